package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads dotenv files into the process environment. Later files
// override earlier ones and existing variables. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if err := godotenv.Overload(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnvOverrides overrides cfg fields with TEXSITE_* variables that are set.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := strings.TrimSpace(os.Getenv("TEXSITE_MATH_RENDERER")); v != "" {
		cfg.MathRenderer = v
	}
	if v := strings.TrimSpace(os.Getenv("TEXSITE_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TEXSITE_SOURCE_DIR")); v != "" {
		cfg.SourceDir = v
	}
	if v := strings.TrimSpace(os.Getenv("TEXSITE_OUTPUT_DIR")); v != "" {
		cfg.OutputDir = v
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TEXSITE_VERBOSE"))) {
	case "1", "true", "yes", "on":
		cfg.Verbose = true
	case "0", "false", "no", "off":
		cfg.Verbose = false
	}
}
