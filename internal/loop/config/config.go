// Package config centralizes all tunable game parameters.
package config

import "time"

// Obstacle travel along the lane (world Y axis).
const (
	StartPosition  = 40.0  // Spawn distance of a fresh obstacle
	OutOfBounds    = -10.0 // Obstacle resets once it passes below this
	JudgeThreshold = 0.12  // Obstacle crosses the player here
)

// Difficulty ramp. Velocity is obstacle speed in world units per second.
const (
	BaseVelocity = 10.0
	VelocityStep = 1.0
	MaxVelocity  = 50.0
)

// Footprint scale bounds shared by avatars and obstacles.
const (
	MinScale = 0.5
	MaxScale = 3.5
)

// Tolerance band: the player passes while each axis of its scale lies
// within [ErrorMin, ErrorMax] times the obstacle's target scale.
const (
	ErrorMin = 0.73
	ErrorMax = 1.1
)

// Player scale controller.
const (
	RateConstant   = 0.005 // Peak change per frame per unit of velocity
	MinDelta       = 0.002 // Floor so the scale never stalls at the extremes
	AdjustVelocity = 1.0
	ReferenceFPS   = 60.0 // Frame rate the per-frame step is tuned for
)

// View resolution - the visible viewport in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical viewport width
	ViewHeight = 80  // Logical viewport height (in sub-pixels, so 40 terminal rows)
)

// Maximum terminal area used for rendering; larger terminals get a centred,
// bordered canvas.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Camera.
const (
	CameraY    = 15.0 // Camera centre on the lane
	CameraSpan = 60.0 // World units visible vertically
)

// Footprint size in world units of a transform with scale 1.
const UnitSize = 2.0

// HUD text height in normalized screen units.
const TextHeight = 0.09

// MaxFrameDelta caps the seconds a single update may simulate. At MaxVelocity
// the obstacle moves 5 units per capped frame, less than the 10.12 between
// the judgment and out-of-bounds lines.
const MaxFrameDelta = 0.1

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Inactivity
const (
	InactivityDisconnectUser = 120 * time.Second
)
