package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/scene"
)

// Avatar is a player figure backed by a scene transform.
type Avatar struct {
	t *scene.Transform
}

// NewAvatar wraps a bound transform.
func NewAvatar(t *scene.Transform) *Avatar {
	return &Avatar{t: t}
}

// Scale returns the avatar's (width, depth) footprint.
func (a *Avatar) Scale() mgl32.Vec2 {
	return a.t.Footprint()
}

// SetScale sets the footprint, clamped to the allowed range.
func (a *Avatar) SetScale(s mgl32.Vec2) {
	a.t.SetFootprint(clampScale(s))
}

// Position returns the avatar's world position.
func (a *Avatar) Position() mgl32.Vec3 {
	return a.t.Position
}

// SwapPositions exchanges where two avatars stand. Scales are untouched.
func SwapPositions(a, b *Avatar) {
	a.t.Position, b.t.Position = b.t.Position, a.t.Position
}

// Swapper decides which of the live and shadow avatars is on stage.
type Swapper struct {
	live, shadow *Avatar
	dead         bool
}

// NewSwapper starts with the live avatar on stage.
func NewSwapper(live, shadow *Avatar) *Swapper {
	return &Swapper{live: live, shadow: shadow}
}

// Die puts the shadow avatar on stage. It does nothing if it already is.
func (s *Swapper) Die() {
	if s.dead {
		return
	}
	SwapPositions(s.live, s.shadow)
	s.dead = true
}

// Revive puts the live avatar back on stage. It does nothing if it already is.
func (s *Swapper) Revive() {
	if !s.dead {
		return
	}
	SwapPositions(s.live, s.shadow)
	s.dead = false
}

// Dead reports whether the shadow avatar is on stage.
func (s *Swapper) Dead() bool {
	return s.dead
}
