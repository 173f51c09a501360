package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/input"
	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/physics"
)

// Controller turns directional input into footprint changes.
//
// Left/right resize the width and down/up the depth. The step on each axis
// follows r*(1-r), with r the axis' position in the scale range, so resizing
// is quickest mid-range and slows toward the limits. The step also grows with
// obstacle velocity.
type Controller struct{}

// Update returns the new footprint for the avatars. The per-frame step is
// tuned for ReferenceFPS and scaled by elapsed seconds.
func (Controller) Update(in *input.State, elapsed, velocity float32, scale mgl32.Vec2) mgl32.Vec2 {
	move := mgl32.Vec2{
		axis(in, input.ButtonLeft, input.ButtonRight),
		axis(in, input.ButtonDown, input.ButtonUp),
	}
	frames := elapsed * config.ReferenceFPS

	next := scale
	for i := range 2 {
		if move[i] == 0 {
			continue
		}
		next[i] += move[i] * config.AdjustVelocity * step(scale[i], velocity) * frames
	}
	return clampScale(next)
}

// axis returns -1, 0 or 1. Holding both directions cancels out.
func axis(in *input.State, neg, pos input.Button) float32 {
	switch {
	case in.Pressed(neg) && !in.Pressed(pos):
		return -1
	case in.Pressed(pos) && !in.Pressed(neg):
		return 1
	}
	return 0
}

func step(current, velocity float32) float32 {
	r := (current - config.MinScale) / config.MaxScale
	return max(config.RateConstant*velocity*r*(1-r), config.MinDelta)
}

func clampScale(s mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		physics.Clamp[float32](s.X(), config.MinScale, config.MaxScale),
		physics.Clamp[float32](s.Y(), config.MinScale, config.MaxScale),
	}
}
