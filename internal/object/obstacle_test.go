package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/loop/config"
)

func TestRandomScaleWithinBounds(t *testing.T) {
	r := NewRandomScale(7)
	for i := 0; i < 10000; i++ {
		v := r.Next()
		for axis := range 2 {
			if v[axis] < config.MinScale || v[axis] > config.MaxScale {
				t.Fatalf("draw %d axis %d = %v out of [%v, %v]", i, axis, v[axis], config.MinScale, config.MaxScale)
			}
		}
	}
}

func TestRandomScaleSeeded(t *testing.T) {
	a, b := NewRandomScale(99), NewRandomScale(99)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatal("equal seeds should produce equal sequences")
		}
	}
}

func TestAdvance(t *testing.T) {
	c := NewObstacleCycle(FixedScale{1, 1})
	c.Advance(0.5, 10)
	if c.Obstacle.Position != config.StartPosition-5 {
		t.Fatalf("position = %v, want %v", c.Obstacle.Position, config.StartPosition-5)
	}
}

func TestCheckAndResetWaitsForOutOfBounds(t *testing.T) {
	s := NewSession()
	c := NewObstacleCycle(FixedScale{2, 3})
	c.Obstacle.Position = config.OutOfBounds

	if _, ok := c.CheckAndReset(false, s); ok {
		t.Fatal("obstacle exactly on the out-of-bounds line must not reset")
	}
	if s.Score != 0 {
		t.Fatal("session touched without a reset")
	}
}

func TestCheckAndResetSuccess(t *testing.T) {
	s := NewSession()
	c := NewObstacleCycle(FixedScale{2, 3})
	c.Obstacle.Position = config.OutOfBounds - 0.1

	ev, ok := c.CheckAndReset(false, s)
	if !ok {
		t.Fatal("expected a reset")
	}
	if ev.Failed {
		t.Error("event should report success")
	}
	if ev.TargetScale != (mgl32.Vec2{2, 3}) || c.Obstacle.TargetScale != (mgl32.Vec2{2, 3}) {
		t.Errorf("new target = %v / %v, want (2, 3)", ev.TargetScale, c.Obstacle.TargetScale)
	}
	if c.Obstacle.Position != config.StartPosition {
		t.Errorf("position = %v, want start", c.Obstacle.Position)
	}
	if s.Score != 1 || s.Best != 1 || s.Velocity != config.BaseVelocity+config.VelocityStep {
		t.Errorf("session after clear: %+v", *s)
	}
}

func TestCheckAndResetFailure(t *testing.T) {
	s := &Session{Velocity: 20, Score: 4, Best: 9}
	c := NewObstacleCycle(FixedScale{1, 1})
	c.Obstacle.Position = config.OutOfBounds - 1

	ev, ok := c.CheckAndReset(true, s)
	if !ok || !ev.Failed {
		t.Fatalf("expected failed reset, got %+v, %v", ev, ok)
	}
	if s.Velocity != config.BaseVelocity || s.Score != 0 || s.Best != 9 {
		t.Errorf("session after failure: %+v", *s)
	}
}

func TestCheckAndResetClampsSource(t *testing.T) {
	c := NewObstacleCycle(FixedScale{0.1, 9})
	c.Obstacle.Position = config.OutOfBounds - 1
	c.CheckAndReset(false, NewSession())

	if c.Obstacle.TargetScale != (mgl32.Vec2{config.MinScale, config.MaxScale}) {
		t.Fatalf("target = %v, want clamped", c.Obstacle.TargetScale)
	}
}
