package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/bridgefit/internal/config"
	"github.com/tomz197/bridgefit/internal/loop"
	"golang.org/x/term"
)

func main() {
	// The terminal belongs to the game; logs only go to a file when asked for.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("BRIDGEFIT_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.RunOptions{Logger: logger})
	_ = term.Restore(fd, oldState)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
