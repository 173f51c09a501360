// Package loop runs the game: the per-frame update order, the HUD and the
// terminal frame loop.
package loop

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/input"
	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/object"
	"github.com/tomz197/bridgefit/internal/scene"
)

// Renderer draws a scene and text overlays. Implementations decide how.
type Renderer interface {
	// DrawScene renders every drawable of the scene through the camera.
	DrawScene(sc *scene.Scene, cam *scene.Camera)
	// DrawText draws a string with its bottom-left corner at a normalized
	// screen position ([-1, 1], y up).
	DrawText(text string, at mgl32.Vec2, c color.RGBA)
}

// Options configures a Game.
type Options struct {
	Scales object.ScaleSource // Obstacle target sizes; seeded from the clock when nil
	Logger *log.Logger        // Defaults to the package logger
}

// Game is the composition root of one play session.
type Game struct {
	scene    *scene.Scene
	handles  scene.Handles
	session  *object.Session
	cycle    *object.ObstacleCycle
	judge    Judge
	ctrl     object.Controller
	live     *object.Avatar
	shadow   *object.Avatar
	swapper  *object.Swapper
	input    input.State
	renderer Renderer
	logger   *log.Logger
	done     bool
}

// NewGame binds the scene and starts a session. Binding errors are fatal to
// the caller: the game has no valid state without its transforms.
func NewGame(sc *scene.Scene, r Renderer, opts Options) (*Game, error) {
	h, err := scene.Bind(sc)
	if err != nil {
		return nil, err
	}

	scales := opts.Scales
	if scales == nil {
		scales = object.NewRandomScale(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	live := object.NewAvatar(h.Player)
	shadow := object.NewAvatar(h.Dead)
	g := &Game{
		scene:    sc,
		handles:  h,
		session:  object.NewSession(),
		cycle:    object.NewObstacleCycle(scales),
		judge:    DefaultJudge(),
		live:     live,
		shadow:   shadow,
		swapper:  object.NewSwapper(live, shadow),
		renderer: r,
		logger:   logger,
	}
	g.syncObstacle()
	return g, nil
}

// HandleEvent consumes one key event. It reports whether the event was used.
func (g *Game) HandleEvent(ev input.Event) bool {
	if !g.input.Apply(ev) {
		return false
	}
	if ev.Button == input.ButtonCancel && ev.Kind == input.KeyDown {
		g.done = true
	}
	return true
}

// Update advances the game by elapsed seconds.
//
// Order matters: the obstacle moves, a finished pass is reset using the
// failure recorded on an earlier frame, the player resizes at the (possibly
// reset) velocity, and only then is the crossing judged. A failure judged
// this frame therefore waits for the next reset.
//
// elapsed is capped at MaxFrameDelta so one frame can never carry the
// obstacle from above the judgment line past the out-of-bounds line.
func (g *Game) Update(elapsed float32) {
	elapsed = min(elapsed, config.MaxFrameDelta)
	previous := g.cycle.Obstacle.Position
	g.cycle.Advance(elapsed, g.session.Velocity)

	if ev, ok := g.cycle.CheckAndReset(g.session.FailedPending, g.session); ok {
		g.session.FailedPending = false
		if ev.Failed {
			g.swapper.Revive()
		}
		g.logger.Debug("obstacle reset",
			"failed", ev.Failed, "score", g.session.Score, "best", g.session.Best,
			"velocity", g.session.Velocity, "target", ev.TargetScale)
	}

	next := g.ctrl.Update(&g.input, elapsed, g.session.Velocity, g.live.Scale())
	g.live.SetScale(next)
	g.shadow.SetScale(next)

	obs := g.cycle.Obstacle
	if g.judge.Evaluate(obs.Position, previous, g.live.Scale(), obs.TargetScale) {
		g.session.FailedPending = true
		g.swapper.Die()
		g.logger.Debug("footprint mismatch",
			"player", g.live.Scale(), "target", obs.TargetScale, "score", g.session.Score)
	}

	g.syncObstacle()
	g.input.EndFrame()
}

// Draw renders the scene and the score line into a viewport of the given
// pixel size.
func (g *Game) Draw(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.handles.Camera.Aspect = float32(width) / float32(height)
	g.renderer.DrawScene(g.scene, g.handles.Camera)
	drawHUD(g.renderer, g.session, g.handles.Camera.Aspect, height)
}

// Done reports whether the player cancelled the session.
func (g *Game) Done() bool {
	return g.done
}

// Session exposes the score record read-only to hosts and tests.
func (g *Game) Session() object.Session {
	return *g.session
}

// syncObstacle mirrors the obstacle onto its transforms. The inner ring
// shows the smallest footprint that still passes.
func (g *Game) syncObstacle() {
	obs := g.cycle.Obstacle
	outer, inner := g.handles.ObstacleOuter, g.handles.ObstacleInner

	outer.Position[1] = obs.Position
	outer.SetFootprint(obs.TargetScale)
	inner.Position = outer.Position
	inner.SetFootprint(obs.TargetScale.Mul(config.ErrorMin))
}
