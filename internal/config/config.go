// Package config loads example configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the settings shared by the example programs.
type Config struct {
	Width         int
	Height        int
	Debug         bool
	ShowFPS       bool
	ScriptPath    string
	ScreenshotDir string
	// Frames bounds headless runs.
	Frames int
}

// Load reads configuration from environment variables and returns a
// validated Config. Optional variables with defaults: REVEAL_WIDTH (1280),
// REVEAL_HEIGHT (720), REVEAL_DEBUG (false), REVEAL_SHOW_FPS (false),
// REVEAL_SCRIPT (none), REVEAL_SCREENSHOT_DIR (screenshots),
// REVEAL_FRAMES (600).
func Load() (*Config, error) {
	width, err := intVar("REVEAL_WIDTH", 1280)
	if err != nil {
		return nil, err
	}
	height, err := intVar("REVEAL_HEIGHT", 720)
	if err != nil {
		return nil, err
	}
	frames, err := intVar("REVEAL_FRAMES", 600)
	if err != nil {
		return nil, err
	}
	debug, err := boolVar("REVEAL_DEBUG")
	if err != nil {
		return nil, err
	}
	showFPS, err := boolVar("REVEAL_SHOW_FPS")
	if err != nil {
		return nil, err
	}

	screenshotDir := "screenshots"
	if v, ok := os.LookupEnv("REVEAL_SCREENSHOT_DIR"); ok {
		screenshotDir = v
	}

	return &Config{
		Width:         width,
		Height:        height,
		Debug:         debug,
		ShowFPS:       showFPS,
		ScriptPath:    strings.TrimSpace(os.Getenv("REVEAL_SCRIPT")),
		ScreenshotDir: screenshotDir,
		Frames:        frames,
	}, nil
}

func intVar(name string, def int) (int, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid integer %q: %w", name, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}

func boolVar(name string) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", name, v, err)
	}
	return b, nil
}
