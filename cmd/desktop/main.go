package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/bridgefit/internal/config"
	"github.com/tomz197/bridgefit/internal/desktop"
)

func main() {
	logger := config.NewLogger(os.Stderr)

	host, err := desktop.NewHost(logger, nil)
	if err != nil {
		logger.Fatal("failed to start game", "err", err)
	}

	ebiten.SetWindowSize(config.GetEnvInt("BRIDGEFIT_WINDOW_WIDTH", 960), config.GetEnvInt("BRIDGEFIT_WINDOW_HEIGHT", 640))
	ebiten.SetWindowTitle("Bridgefit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(host); err != nil {
		logger.Fatal("game error", "err", err)
	}
	s := host.Session()
	logger.Info("session finished", "score", s.Score, "best", s.Best)
}
