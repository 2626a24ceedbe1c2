package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the snowball mode in the terminal.

Controls:
  W/A/S/D, arrows  - Roll
  Mouse click      - Grab mouse
  Esc              - Ungrab mouse
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a key counts as held
until terminal.key_hold passes without a repeat.

Logs are discarded unless --log-file is set, since stderr shares the screen.

Examples:
  snowroll play
  snowroll play --config ./my-snowball.yaml
  snowroll play --log-file ./snowroll.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	mode, cfg, err := loadMode(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; bubbletea resizes on its first WindowSizeMsg
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ViewW = w
		rt.ViewH = h - 1 // help line
	}
	rt.TickRate = flagFPS

	runErr := tui.Run(mode, tui.Options{
		Runtime: rt,
		KeyHold: cfg.Terminal.KeyHold,
		Logger:  logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
