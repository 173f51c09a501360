package loop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/loop/config"
)

func TestJudgeTolerance(t *testing.T) {
	target := mgl32.Vec2{1, 1}
	tests := []struct {
		name   string
		player mgl32.Vec2
		fail   bool
	}{
		{"slightly wide passes", mgl32.Vec2{1.05, 1}, false},
		{"too wide fails", mgl32.Vec2{1.15, 1}, true},
		{"too narrow fails", mgl32.Vec2{0.72, 1}, true},
		{"lower edge passes", mgl32.Vec2{0.73, 1}, false},
		{"upper edge passes", mgl32.Vec2{1.1, 1}, false},
		{"too deep fails", mgl32.Vec2{1, 1.15}, true},
		{"too shallow fails", mgl32.Vec2{1, 0.72}, true},
		{"exact match passes", mgl32.Vec2{1, 1}, false},
	}

	j := DefaultJudge()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.Evaluate(0, 1, tt.player, target); got != tt.fail {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.player, got, tt.fail)
			}
		})
	}
}

func TestJudgeScalesWithTarget(t *testing.T) {
	j := DefaultJudge()
	target := mgl32.Vec2{3, 0.5}

	if j.Evaluate(0, 1, mgl32.Vec2{3.2, 0.5}, target) {
		t.Error("3.2 is within 1.1 x 3 and should pass")
	}
	if !j.Evaluate(0, 1, mgl32.Vec2{3, 0.6}, target) {
		t.Error("0.6 is above 1.1 x 0.5 and should fail")
	}
}

func TestJudgeOnlyOnFallingEdge(t *testing.T) {
	j := DefaultJudge()
	wrong := mgl32.Vec2{3, 3}
	target := mgl32.Vec2{1, 1}

	if j.Evaluate(0.5, 1, wrong, target) {
		t.Error("judged before reaching the threshold")
	}
	if j.Evaluate(-0.5, -0.1, wrong, target) {
		t.Error("judged after the threshold was already passed")
	}
	if j.Evaluate(40, -10.5, wrong, target) {
		t.Error("judged on an obstacle respawn")
	}
}

func TestJudgeFiresOncePerPass(t *testing.T) {
	j := DefaultJudge()
	wrong := mgl32.Vec2{3, 3}
	target := mgl32.Vec2{1, 1}

	for _, step := range []float32{0.01, 0.05, 0.1, 0.37, 1, 2.5} {
		fired := 0
		pos := float32(5.0037)
		for pos > -10 {
			prev := pos
			pos -= step
			if j.Evaluate(pos, prev, wrong, target) {
				fired++
			}
		}
		if fired != 1 {
			t.Errorf("step %v: judged %d times, want once", step, fired)
		}
	}
}

func TestJudgeStepLandingOnThreshold(t *testing.T) {
	j := DefaultJudge()
	wrong := mgl32.Vec2{3, 3}
	target := mgl32.Vec2{1, 1}
	threshold := float32(config.JudgeThreshold)

	positions := []float32{threshold + 0.5, threshold, threshold - 0.5, threshold - 1}
	fired := 0
	for i := 1; i < len(positions); i++ {
		if j.Evaluate(positions[i], positions[i-1], wrong, target) {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("judged %d times, want once", fired)
	}
}
