package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowroll/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the snowball mode in a desktop window.

Controls:
  W/A/S/D       - Roll
  Mouse click   - Grab mouse
  Esc           - Ungrab mouse
  Q             - Quit

Examples:
  snowroll window
  snowroll window --width 1280 --height 720`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 540, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	mode, _, err := loadMode(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := window.Run(mode, window.Options{
		Width:  flagWidth,
		Height: flagHeight,
		TPS:    flagFPS,
		Logger: logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
