package desktop

import (
	"image/color"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/bridgefit/internal/input"
	"github.com/tomz197/bridgefit/internal/loop"
	"github.com/tomz197/bridgefit/internal/loop/config"
	"github.com/tomz197/bridgefit/internal/object"
	"github.com/tomz197/bridgefit/internal/scene"
)

var background = color.RGBA{0x12, 0x12, 0x1a, 0xff}

// keyBindings lists the keys driving each button.
var keyBindings = map[input.Button][]ebiten.Key{
	input.ButtonLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.ButtonRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	input.ButtonUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
	input.ButtonDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
	input.ButtonCancel: {ebiten.KeyEscape},
}

// Host adapts a Game to ebiten.Game.
type Host struct {
	game     *loop.Game
	renderer *Renderer
	held     map[input.Button]bool
}

// NewHost builds the default scene and starts a game on it.
func NewHost(logger *log.Logger, scales object.ScaleSource) (*Host, error) {
	r := NewRenderer(config.UnitSize)
	g, err := loop.NewGame(scene.Bridge(), r, loop.Options{Scales: scales, Logger: logger})
	if err != nil {
		return nil, err
	}
	return &Host{game: g, renderer: r, held: make(map[input.Button]bool)}, nil
}

// Update feeds this tick's key transitions to the game and advances it by
// one tick.
func (h *Host) Update() error {
	for _, ev := range keyEvents(h.held, inpututil.IsKeyJustPressed, ebiten.IsKeyPressed) {
		h.game.HandleEvent(ev)
	}
	if h.game.Done() {
		return ebiten.Termination
	}
	h.game.Update(1 / float32(ebiten.TPS()))
	return nil
}

// Draw renders the current frame.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	h.renderer.SetScreen(screen)
	b := screen.Bounds()
	h.game.Draw(b.Dx(), b.Dy())
}

// Layout uses the window size as the screen size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Session exposes the final score once the window closes.
func (h *Host) Session() object.Session {
	return h.game.Session()
}

// keyEvents turns key state into button events. A button is held while any
// of its keys is held, so releasing one of two held keys is not a release.
func keyEvents(held map[input.Button]bool, justPressed, pressed func(ebiten.Key) bool) []input.Event {
	var events []input.Event
	for b := input.ButtonLeft; b <= input.ButtonCancel; b++ {
		keys := keyBindings[b]
		now := slices.ContainsFunc(keys, pressed)
		switch {
		case slices.ContainsFunc(keys, justPressed):
			events = append(events, input.Event{Kind: input.KeyDown, Button: b})
			if !now {
				// Tapped and released within one tick.
				events = append(events, input.Event{Kind: input.KeyUp, Button: b})
			}
		case held[b] && !now:
			events = append(events, input.Event{Kind: input.KeyUp, Button: b})
		}
		held[b] = now
	}
	return events
}
