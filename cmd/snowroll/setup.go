package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snowroll/internal/config"
	"github.com/vovakirdan/snowroll/internal/scene"
	"github.com/vovakirdan/snowroll/internal/snowball"
)

// newLogger builds the command logger. Logs go to --log-file when set, otherwise to
// fallback. The returned close func is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snowroll",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadMode loads config and scene from the global flags and binds a mode.
func loadMode(logger *log.Logger) (*snowball.Mode, config.SnowballConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, err
	}

	asset, err := scene.Load(flagScene)
	if err != nil {
		return nil, cfg, err
	}
	logger.Debug("scene loaded", "name", asset.Name, "nodes", asset.Graph.Len())

	mode, err := snowball.New(asset.Graph, cfg, snowball.WithLogger(logger))
	if err != nil {
		return nil, cfg, err
	}
	return mode, cfg, nil
}
