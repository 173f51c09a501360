package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/input"
	"github.com/tomz197/bridgefit/internal/loop/config"
)

const frame = 1.0 / config.ReferenceFPS

func held(buttons ...input.Button) *input.State {
	var s input.State
	for _, b := range buttons {
		s.Apply(input.Event{Kind: input.KeyDown, Button: b})
	}
	return &s
}

func TestControllerNoInput(t *testing.T) {
	got := Controller{}.Update(held(), frame, config.BaseVelocity, mgl32.Vec2{1, 2})
	if got != (mgl32.Vec2{1, 2}) {
		t.Fatalf("scale moved without input: %v", got)
	}
}

func TestControllerOpposingPressesCancel(t *testing.T) {
	in := held(input.ButtonLeft, input.ButtonRight, input.ButtonUp, input.ButtonDown)
	got := Controller{}.Update(in, frame, config.BaseVelocity, mgl32.Vec2{1, 2})
	if got != (mgl32.Vec2{1, 2}) {
		t.Fatalf("opposing presses should cancel, got %v", got)
	}
}

func TestControllerAxes(t *testing.T) {
	start := mgl32.Vec2{2, 2}
	tests := []struct {
		name   string
		button input.Button
		axis   int
		sign   float32
	}{
		{"left shrinks width", input.ButtonLeft, 0, -1},
		{"right grows width", input.ButtonRight, 0, 1},
		{"down shrinks depth", input.ButtonDown, 1, -1},
		{"up grows depth", input.ButtonUp, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Controller{}.Update(held(tt.button), frame, config.BaseVelocity, start)
			delta := (got[tt.axis] - start[tt.axis]) * tt.sign
			if delta <= 0 {
				t.Fatalf("axis %d moved the wrong way: %v -> %v", tt.axis, start[tt.axis], got[tt.axis])
			}
			other := 1 - tt.axis
			if got[other] != start[other] {
				t.Errorf("axis %d should not move: %v -> %v", other, start[other], got[other])
			}
		})
	}
}

func TestControllerStepShape(t *testing.T) {
	// The logistic step peaks mid-range and bottoms out at MinDelta.
	if got := step(config.MinScale, config.BaseVelocity); got != config.MinDelta {
		t.Errorf("step at MinScale = %v, want MinDelta", got)
	}

	mid := step(2.25, config.BaseVelocity)
	edge := step(3.4, config.BaseVelocity)
	if mid <= edge {
		t.Errorf("mid-range step %v should exceed near-limit step %v", mid, edge)
	}

	if fast := step(2.25, config.MaxVelocity); fast <= mid {
		t.Errorf("step should grow with velocity: %v <= %v", fast, mid)
	}
}

func TestControllerFrameScaling(t *testing.T) {
	in := held(input.ButtonRight)
	start := mgl32.Vec2{2, 2}

	if got := (Controller{}).Update(in, 0, config.BaseVelocity, start); got != start {
		t.Fatalf("zero elapsed moved the scale: %v", got)
	}

	one := Controller{}.Update(in, frame, config.BaseVelocity, start)[0] - start[0]
	two := Controller{}.Update(in, 2*frame, config.BaseVelocity, start)[0] - start[0]
	if diff := two - 2*one; diff > 1e-5 || diff < -1e-5 {
		t.Fatalf("double elapsed should double the step: %v vs %v", two, one)
	}
}

func TestControllerStaysInBounds(t *testing.T) {
	sequences := [][]input.Button{
		{input.ButtonRight, input.ButtonUp},
		{input.ButtonLeft, input.ButtonDown},
		{input.ButtonRight, input.ButtonDown},
	}
	elapsed := []float32{frame, 0.5, 3, frame / 4}

	for _, seq := range sequences {
		scale := mgl32.Vec2{1, 1}
		for i := 0; i < 2000; i++ {
			scale = Controller{}.Update(held(seq...), elapsed[i%len(elapsed)], config.MaxVelocity, scale)
			for axis := range 2 {
				if scale[axis] < config.MinScale || scale[axis] > config.MaxScale {
					t.Fatalf("scale %v left bounds after %d updates", scale, i)
				}
			}
		}
	}
}
