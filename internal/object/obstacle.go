package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/loop/config"
)

// Obstacle is the ring travelling down the lane toward the player.
type Obstacle struct {
	Position    float32    // Distance along the lane
	TargetScale mgl32.Vec2 // Footprint the player has to match
}

// ResetEvent describes one completed obstacle cycle.
type ResetEvent struct {
	Failed      bool       // The pass that just ended was judged a mismatch
	TargetScale mgl32.Vec2 // Target of the freshly spawned obstacle
}

// ObstacleCycle moves the obstacle and respawns it past the out-of-bounds line.
type ObstacleCycle struct {
	Obstacle Obstacle
	source   ScaleSource
}

// NewObstacleCycle spawns the first obstacle at the start distance. The first
// target is the default (1, 1) footprint so the opening pass always fits.
func NewObstacleCycle(source ScaleSource) *ObstacleCycle {
	return &ObstacleCycle{
		Obstacle: Obstacle{
			Position:    config.StartPosition,
			TargetScale: mgl32.Vec2{1, 1},
		},
		source: source,
	}
}

// Advance moves the obstacle toward the player.
func (c *ObstacleCycle) Advance(elapsed, velocity float32) {
	c.Obstacle.Position -= velocity * elapsed
}

// CheckAndReset respawns the obstacle once it has passed the out-of-bounds
// line and applies the pass outcome to the session. It reports false while
// the obstacle is still travelling.
func (c *ObstacleCycle) CheckAndReset(failed bool, s *Session) (ResetEvent, bool) {
	if c.Obstacle.Position >= config.OutOfBounds {
		return ResetEvent{}, false
	}

	c.Obstacle.TargetScale = clampScale(c.source.Next())
	if failed {
		s.Fail()
	} else {
		s.Clear()
	}
	c.Obstacle.Position = config.StartPosition

	return ResetEvent{Failed: failed, TargetScale: c.Obstacle.TargetScale}, true
}
