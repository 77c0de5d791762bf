package app

import (
	"fmt"
	"os"
	"path/filepath"

	"nynf/internal/config"
)

// Environment variables overriding the default directories
const (
	envDataDir   = "NYNF_DATA_DIR"
	envOutputDir = "NYNF_OUTPUT_DIR"
)

// Context carries the resolved configuration and directories every
// command operates against
type Context struct {
	Config    *config.Config
	DataDir   string
	OutputDir string
}

// NewContext loads the embedded config and resolves the data and output
// directories. The data directory is created if missing; the output
// directory is created lazily by the renderer.
func NewContext() (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dataDir := os.Getenv(envDataDir)
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		dataDir = filepath.Join(base, "nynf")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
	}

	outputDir := os.Getenv(envOutputDir)
	if outputDir == "" {
		outputDir = "output"
	}

	return &Context{
		Config:    cfg,
		DataDir:   dataDir,
		OutputDir: outputDir,
	}, nil
}
