package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowroll/internal/config"
	"github.com/vovakirdan/snowroll/internal/scene"
	"github.com/vovakirdan/snowroll/internal/snowball"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how a scene binds",
	Long: `Loads the scene asset, lists its nodes, and binds the snowball mode to it.
Exits non-zero if the scene lacks a Ground, a Sphere, or exactly one camera.

Examples:
  snowroll inspect
  snowroll inspect --scene ./my-scene.yaml`,
	Args: cobra.NoArgs,
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	asset, err := scene.Load(flagScene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printNodes(os.Stdout, asset)

	mode, err := snowball.New(asset.Graph, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Bound: %d coins, %d colliders, win at %d\n",
		mode.CoinCount(), mode.ColliderCount(), cfg.Pickup.WinThreshold)
}

// printNodes writes a node table for the asset.
func printNodes(w io.Writer, asset scene.Asset) {
	g := asset.Graph
	name := asset.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "Scene %s: %d nodes, %d cameras\n\n", name, g.Len(), len(g.Cameras))

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range g.Transforms {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %-6s  %s\n", maxNameLen, "Name", "Mesh", "World position")
	fmt.Fprintf(w, "  %-*s  %-6s  %s\n", maxNameLen, "----", "----", "--------------")

	for i := range g.Transforms {
		t := &g.Transforms[i]
		p := g.WorldPosition(scene.Handle(i))
		mesh := t.Mesh
		if mesh == "" {
			mesh = "-"
		}
		fmt.Fprintf(w, "  %-*s  %-6s  (%.2f, %.2f, %.2f)\n", maxNameLen, t.Name, mesh, p.X(), p.Y(), p.Z())
	}
}
