package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bridgefit/internal/draw"
	"github.com/tomz197/bridgefit/internal/input"
	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/object"
	"github.com/tomz197/bridgefit/internal/scene"
)

// RunOptions configures a terminal session.
type RunOptions struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger
	Scales       object.ScaleSource
	IdleTimeout  time.Duration // Zero disables the idle disconnect
}

// Run plays one session on a terminal with the standard Input → Update → Draw
// cycle. It returns when the player quits, input closes or the session idles
// out.
func Run(r *bufio.Reader, w io.Writer, opts RunOptions) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)
	renderer := draw.NewTermRenderer(canvas, chunkWriter, config.UnitSize)

	game, err := NewGame(scene.Bridge(), renderer, Options{Scales: opts.Scales, Logger: logger})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := input.StartStream(ctx, r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	lastInput := lastTime

	for !game.Done() {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		events, typed := stream.Poll(frameStart)
		if typed {
			lastInput = frameStart
		}
		if stream.Quit() {
			break
		}
		if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			logger.Info("session idle, disconnecting", "idle", frameStart.Sub(lastInput).Round(time.Second))
			break
		}
		for _, ev := range events {
			game.HandleEvent(ev)
		}

		// ===== UPDATE PHASE =====
		updateScreen(canvas, chunkWriter, w, termSizeFunc)
		game.Update(float32(delta.Seconds()))

		// ===== DRAW PHASE =====
		game.Draw(config.ViewWidth, config.ViewHeight)
		if err := renderer.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	s := game.Session()
	logger.Info("session finished", "score", s.Score, "best", s.Best)
	draw.ClearScreen(w)
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func updateScreen(canvas *draw.Canvas, cw *draw.ChunkWriter, w io.Writer, termSizeFunc draw.TermSizeFunc) {
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != canvas.TerminalWidth() || renderHeight != canvas.TerminalHeight() ||
		offsetCol != canvas.OffsetCol() || offsetRow != canvas.OffsetRow() {
		draw.ClearScreen(w)
		canvas.ForceRedraw()
	}

	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
