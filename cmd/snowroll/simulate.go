package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/snowball"
)

var (
	flagFrames int
	flagDT     float32
	flagHold   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run frames headless and print the final state",
	Long: `Runs the snowball mode without a display for a fixed number of frames with
a fixed timestep, holding the given movement keys the whole time, then prints
the final state as YAML. Runs are deterministic.

Examples:
  snowroll simulate --frames 600
  snowroll simulate --frames 300 --hold dw
  snowroll simulate --dt 0.01 --hold a --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().Float32Var(&flagDT, "dt", 0, "Seconds per frame (default 1/fps)")
	simulateCmd.Flags().StringVar(&flagHold, "hold", "", "Movement keys to hold, e.g. \"dw\"")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	keys, err := parseHold(flagHold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mode, _, err := loadMode(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dt := flagDT
	if dt <= 0 {
		dt = core.RuntimeConfig{TickRate: flagFPS}.FrameSeconds()
	}

	snap := simulate(mode, keys, flagFrames, dt)
	out, err := yaml.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// parseHold maps a string of movement letters to keys.
func parseHold(s string) ([]core.Key, error) {
	var keys []core.Key
	for _, r := range s {
		k := core.ParseKey(string(r))
		switch k {
		case core.KeyW, core.KeyA, core.KeyS, core.KeyD:
			keys = append(keys, k)
		default:
			return nil, fmt.Errorf("invalid --hold key %q (use w, a, s, d)", r)
		}
	}
	return keys, nil
}

// simulate presses keys once, then runs frames fixed steps of dt.
func simulate(mode *snowball.Mode, keys []core.Key, frames int, dt float32) snowball.Snapshot {
	// Headless: a nominal square window for motion normalization.
	window := core.NewSize(1, 1)
	for _, k := range keys {
		mode.HandleEvent(core.KeyDown(k), window)
	}
	for range frames {
		mode.Update(dt)
	}
	return mode.Snapshot()
}
