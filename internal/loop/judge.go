package loop

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/physics"
)

// Judge compares the player's footprint with the obstacle's target at the
// moment the obstacle crosses the player.
type Judge struct {
	Threshold float32 // Lane position of the judgment line
	ErrorMin  float32 // Lower tolerance factor
	ErrorMax  float32 // Upper tolerance factor
}

// DefaultJudge uses the tuned threshold and tolerance band.
func DefaultJudge() Judge {
	return Judge{
		Threshold: config.JudgeThreshold,
		ErrorMin:  config.ErrorMin,
		ErrorMax:  config.ErrorMax,
	}
}

// Evaluate reports whether a new failure happened this frame. It only looks at
// the frame in which the obstacle falls through the threshold, so each pass
// is judged once however the frames subdivide it. Footprints exactly on a
// band edge pass.
func (j Judge) Evaluate(position, previous float32, player, target mgl32.Vec2) bool {
	if !physics.CrossedBelow(previous, position, j.Threshold) {
		return false
	}
	return physics.OutsideBand(player.X(), target.X(), j.ErrorMin, j.ErrorMax) ||
		physics.OutsideBand(player.Y(), target.Y(), j.ErrorMin, j.ErrorMax)
}
