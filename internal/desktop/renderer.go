// Package desktop hosts the game in an ebiten window.
package desktop

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/scene"
)

var meshColors = map[scene.Mesh]color.RGBA{
	scene.MeshBlock: {0x4f, 0xc3, 0xf7, 0xff},
	scene.MeshShell: {0xe5, 0x39, 0x35, 0xff},
	scene.MeshFrame: {0xff, 0xd5, 0x4f, 0xff},
}

// Renderer draws onto the ebiten screen handed to it each frame.
type Renderer struct {
	screen *ebiten.Image
	face   *text.GoXFace
	unit   float32
}

// NewRenderer creates a renderer using the built-in bitmap font.
func NewRenderer(unit float32) *Renderer {
	return &Renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
		unit: unit,
	}
}

// SetScreen selects the image the next draw calls target.
func (r *Renderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// DrawScene fills blocks and outlines frames and shells.
func (r *Renderer) DrawScene(sc *scene.Scene, cam *scene.Camera) {
	if r.screen == nil {
		return
	}
	w, h := r.size()
	for _, d := range sc.Drawables {
		x, y, rw, rh := footprintRect(scene.Corners(d.Transform, r.unit), cam, w, h)
		c := meshColors[d.Mesh]
		if d.Mesh == scene.MeshBlock {
			vector.DrawFilledRect(r.screen, x, y, rw, rh, c, false)
			continue
		}
		vector.StrokeRect(r.screen, x, y, rw, rh, 2, c, false)
	}
}

// DrawText draws a string with its bottom-left corner at a normalized
// screen position, sized to the HUD text height.
func (r *Renderer) DrawText(s string, at mgl32.Vec2, c color.RGBA) {
	if r.screen == nil {
		return
	}
	w, h := r.size()
	x, y := toPixel(at, w, h)

	m := r.face.Metrics()
	lineHeight := m.HAscent + m.HDescent
	scale := config.TextHeight * float64(h) / 2 / lineHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y)-lineHeight*scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, r.face, op)
}

func (r *Renderer) size() (int, int) {
	b := r.screen.Bounds()
	return b.Dx(), b.Dy()
}

// toPixel maps normalized screen space ([-1, 1], y up) to pixels (y down).
func toPixel(ndc mgl32.Vec2, width, height int) (float32, float32) {
	return (ndc.X() + 1) / 2 * float32(width), (1 - ndc.Y()) / 2 * float32(height)
}

// footprintRect returns the pixel rectangle covering projected corners.
func footprintRect(corners [4]mgl32.Vec3, cam *scene.Camera, width, height int) (x, y, w, h float32) {
	minX, minY := toPixel(cam.Project(corners[0]), width, height)
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		px, py := toPixel(cam.Project(c), width, height)
		minX, maxX = min(minX, px), max(maxX, px)
		minY, maxY = min(minY, py), max(maxY, py)
	}
	return minX, minY, maxX - minX, maxY - minY
}
