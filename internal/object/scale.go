package object

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/rand"

	"github.com/tomz197/bridgefit/internal/loop/config"
)

// ScaleSource produces the target footprint of each new obstacle.
type ScaleSource interface {
	Next() mgl32.Vec2
}

// RandomScale draws each axis independently and uniformly from
// [MinScale, MaxScale].
type RandomScale struct {
	rng *rand.Rand
}

// NewRandomScale seeds a generator. A zero seed is replaced by the wall clock.
func NewRandomScale(seed uint64) *RandomScale {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomScale{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a fresh target scale.
func (r *RandomScale) Next() mgl32.Vec2 {
	const span = config.MaxScale - config.MinScale
	return mgl32.Vec2{
		config.MinScale + r.rng.Float32()*span,
		config.MinScale + r.rng.Float32()*span,
	}
}

// FixedScale always returns the same target. Useful for deterministic play.
type FixedScale mgl32.Vec2

// Next returns the fixed target.
func (f FixedScale) Next() mgl32.Vec2 {
	return mgl32.Vec2(f)
}
