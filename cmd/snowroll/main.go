// snowroll is a snowball-rolling game: roll across the field, eat coins, grow, and bump
// off rocks. It runs in the terminal, in a desktop window, or headless.
//
// Usage:
//
//	snowroll play            - Play in the terminal
//	snowroll window          - Play in a desktop window
//	snowroll inspect         - Load and bind a scene, print what was found
//	snowroll simulate        - Run frames headless and print the final state
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom snowball config YAML
//	--scene <path>       - Custom scene asset YAML (default: embedded snowfield)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagScene    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snowroll",
	Short: "Snowroll - roll a snowball, eat coins, grow up",
	Long: `Snowroll is a small 3D gameplay mode: a snowball rolls across a ground
plane, picks up spinning coins to grow, and is stopped dead by rocks.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  inspect   - Show how a scene binds
  simulate  - Run headless for a number of frames

Examples:
  snowroll play
  snowroll window --fps 120
  snowroll inspect --scene ./my-scene.yaml
  snowroll simulate --frames 600 --hold dw`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snowball config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", "", "Path to scene asset YAML (embedded snowfield if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(simulateCmd)
}
