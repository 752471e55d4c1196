package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/texsite/internal/latex"
)

// FileConfig represents the config.yaml schema.
type FileConfig struct {
	Paper struct {
		Title    string         `yaml:"title" json:"title"`
		Authors  []latex.Author `yaml:"authors" json:"authors"`
		Abstract string         `yaml:"abstract" json:"abstract"`
		ArxivID  string         `yaml:"arxiv_id" json:"arxiv_id"`
		CodeURL  string         `yaml:"code_url" json:"code_url"`
		PDFURL   string         `yaml:"pdf_url" json:"pdf_url"`
	} `yaml:"paper" json:"paper"`

	Website struct {
		MathRenderer string `yaml:"math_renderer" json:"math_renderer"`
		Theme        string `yaml:"theme" json:"theme"`
		TOCMin       int    `yaml:"toc_min" json:"toc_min"`
	} `yaml:"website" json:"website"`

	Build struct {
		SourceDir string `yaml:"source_dir" json:"source_dir"`
		WebDir    string `yaml:"web_dir" json:"web_dir"`
		OutputDir string `yaml:"output_dir" json:"output_dir"`
	} `yaml:"build" json:"build"`
}

// ReadConfigFile reads YAML or JSON into FileConfig.
func ReadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return FileConfig{}, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// LoadConfigFile is ReadConfigFile that never fails: a missing or malformed
// file logs a warning and yields the zero FileConfig, so defaults apply.
func LoadConfigFile(path string) FileConfig {
	if strings.TrimSpace(path) == "" {
		return FileConfig{}
	}
	fc, err := ReadConfigFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
	case err != nil:
		log.Warn().Err(err).Str("path", path).Msg("config file unreadable, using defaults")
	}
	return fc
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset in cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setString(&cfg.Title, fc.Paper.Title)
	setString(&cfg.Abstract, fc.Paper.Abstract)
	setString(&cfg.ArxivID, fc.Paper.ArxivID)
	setString(&cfg.CodeURL, fc.Paper.CodeURL)
	setString(&cfg.PDFURL, fc.Paper.PDFURL)
	if len(cfg.Authors) == 0 {
		for _, a := range fc.Paper.Authors {
			if strings.TrimSpace(a.Name) != "" {
				cfg.Authors = append(cfg.Authors, a)
			}
		}
	}

	setString(&cfg.MathRenderer, fc.Website.MathRenderer)
	setString(&cfg.Theme, fc.Website.Theme)
	if cfg.TOCMin == 0 && fc.Website.TOCMin != 0 {
		cfg.TOCMin = fc.Website.TOCMin
	}

	setString(&cfg.SourceDir, fc.Build.SourceDir)
	setString(&cfg.WebDir, fc.Build.WebDir)
	setString(&cfg.OutputDir, fc.Build.OutputDir)
}

// ValidateConfig checks the directory layout of a build.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.SourceDir) == "" {
		return errors.New("config: source directory is required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New("config: output directory is required")
	}
	if filepath.Clean(cfg.SourceDir) == filepath.Clean(cfg.OutputDir) {
		return errors.New("config: output directory must differ from the source directory")
	}
	return nil
}
