package loop

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/object"
)

var (
	hudShadow = color.RGBA{0x00, 0x00, 0x00, 0xff}
	hudText   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// scoreLine formats the HUD text.
func scoreLine(s *object.Session) string {
	return fmt.Sprintf("Current: %d; Best: %d", s.Score, s.Best)
}

// drawHUD draws the score line in the bottom-left corner: a dark copy, then a
// light copy shifted one pixel up and right so the text reads on any
// background.
func drawHUD(r Renderer, s *object.Session, aspect float32, height int) {
	const h = config.TextHeight
	line := scoreLine(s)

	// Margin of a tenth of the text height, measured in aspect-corrected units.
	at := mgl32.Vec2{-1 + 0.1*h/aspect, -1 + 0.1*h}
	ofs := 2 / float32(height)

	r.DrawText(line, at, hudShadow)
	r.DrawText(line, at.Add(mgl32.Vec2{ofs / aspect, ofs}), hudText)
}
