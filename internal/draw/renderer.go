package draw

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/scene"
)

// TermRenderer draws scenes onto a Canvas and text through a ChunkWriter.
// Call Flush once per frame after drawing.
type TermRenderer struct {
	canvas *Canvas
	out    *ChunkWriter
	unit   float32 // World size of a footprint with scale 1
	err    error   // First render error since the last Flush
}

// NewTermRenderer creates a renderer over an existing canvas and writer.
func NewTermRenderer(canvas *Canvas, out *ChunkWriter, unit float32) *TermRenderer {
	return &TermRenderer{canvas: canvas, out: out, unit: unit}
}

// DrawScene rasterizes every drawable's footprint and writes the changed cells.
func (r *TermRenderer) DrawScene(sc *scene.Scene, cam *scene.Camera) {
	r.canvas.Clear()
	for _, d := range sc.Drawables {
		corners := scene.Corners(d.Transform, r.unit)
		points := r.canvas.BorrowPoints(len(corners))
		for i, c := range corners {
			points[i] = r.toLogical(cam.Project(c))
		}
		r.canvas.DrawPolygon(points, d.Mesh == scene.MeshBlock)
	}
	if err := r.canvas.Render(r.out); err != nil && r.err == nil {
		r.err = err
	}
	r.canvas.RenderBorder(r.out)
}

// DrawText writes a coloured string with its bottom-left corner at a
// normalized screen position. Text that would leave the canvas is cut.
func (r *TermRenderer) DrawText(text string, at mgl32.Vec2, c color.RGBA) {
	cols, rows := r.canvas.TerminalWidth(), r.canvas.TerminalHeight()
	if cols <= 0 || rows <= 0 {
		return
	}

	col := int((at.X()+1)/2*float32(cols)) + 1
	row := int((1-at.Y())/2*float32(rows)) + 1
	col = min(max(col, 1), cols)
	row = min(max(row, 1), rows)

	runes := []rune(text)
	if room := cols - col + 1; len(runes) > room {
		runes = runes[:room]
	}

	r.out.WriteAt(col, row, fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, string(runes)))
	r.canvas.ForceRedrawRow(row)
}

// Flush sends the frame to the terminal. It also reports a render error
// recorded while drawing the frame.
func (r *TermRenderer) Flush() error {
	err := r.out.Flush()
	if r.err != nil {
		err, r.err = r.err, nil
	}
	return err
}

// toLogical maps normalized screen space ([-1, 1], y up) to canvas logical
// coordinates (y down).
func (r *TermRenderer) toLogical(ndc mgl32.Vec2) Point {
	return Point{
		X: float64(ndc.X()+1) / 2 * r.canvas.LogicalWidth(),
		Y: float64(1-ndc.Y()) / 2 * r.canvas.LogicalHeight(),
	}
}
