package loop

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/object"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                 string
		termW, termH         int
		w, h, offCol, offRow int
	}{
		{"fits", 100, 30, 100, 30, 0, 0},
		{"too wide", 200, 30, 160, 30, 20, 0},
		{"too tall", 100, 61, 100, 50, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, offCol, offRow := clampTermSize(tt.termW, tt.termH)
			if w != tt.w || h != tt.h || offCol != tt.offCol || offRow != tt.offRow {
				t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d", tt.termW, tt.termH, w, h, offCol, offRow)
			}
		})
	}
}

func TestRunEndsOnQuit(t *testing.T) {
	var out bytes.Buffer
	opts := RunOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
		Logger:       log.New(io.Discard),
		Scales:       object.FixedScale(mgl32.Vec2{1, 1}),
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(bufio.NewReader(strings.NewReader("q")), &out, opts)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit")
	}
	if !strings.HasSuffix(out.String(), "\033[H\033[2J\033[?25h") {
		t.Errorf("screen not cleared and cursor not restored on exit: %q", out.String())
	}
}

func TestRunEndsOnIdle(t *testing.T) {
	// A reader that never delivers input keeps the session idle.
	pr, pw := io.Pipe()
	defer pw.Close()

	opts := RunOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
		Logger:       log.New(io.Discard),
		IdleTimeout:  50 * time.Millisecond,
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(bufio.NewReader(pr), io.Discard, opts)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("idle session was not disconnected")
	}
}
