package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperifyio/texsite/internal/latex"
	"github.com/hyperifyio/texsite/internal/render"
)

const sampleConfig = `paper:
  title: "Config Title"
  authors:
    - name: "Ada"
      affiliation: "Lab"
      url: "https://ada.example"
    - name: ""
  abstract: "From config."
  arxiv_id: "2301.00001"
  code_url: "https://github.com/example/paper"
website:
  math_renderer: "mathjax"
  theme: "minimal"
  toc_min: 3
build:
  source_dir: "tex"
  output_dir: "public"
`

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc := LoadConfigFile(path)
	if fc.Paper.Title != "Config Title" || fc.Website.MathRenderer != "mathjax" || fc.Build.OutputDir != "public" {
		t.Fatalf("unexpected file config: %+v", fc)
	}
	if len(fc.Paper.Authors) != 2 || fc.Paper.Authors[0].URL != "https://ada.example" {
		t.Fatalf("authors not parsed: %+v", fc.Paper.Authors)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"website":{"theme":"academic"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if fc := LoadConfigFile(path); fc.Website.Theme != "academic" {
		t.Fatalf("theme=%q", fc.Website.Theme)
	}
}

func TestLoadConfigFile_MissingOrBrokenYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	if fc := LoadConfigFile(filepath.Join(dir, "nope.yaml")); fc.Paper.Title != "" {
		t.Fatalf("expected zero config for missing file")
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("paper: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadConfigFile(broken); err == nil {
		t.Fatalf("expected parse error")
	}
	if fc := LoadConfigFile(broken); fc.Paper.Title != "" || fc.Build.SourceDir != "" {
		t.Fatalf("expected zero config for broken file: %+v", fc)
	}
}

func TestApplyFileConfig_FillsUnsetOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := Config{OutputDir: "explicit"}
	ApplyFileConfig(&cfg, LoadConfigFile(path))

	if cfg.OutputDir != "explicit" {
		t.Fatalf("explicit value overwritten: %q", cfg.OutputDir)
	}
	if cfg.SourceDir != "tex" || cfg.Theme != "minimal" || cfg.TOCMin != 3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// nameless author entries are dropped
	if len(cfg.Authors) != 1 || cfg.Authors[0] != (latex.Author{Name: "Ada", Affiliation: "Lab", URL: "https://ada.example"}) {
		t.Fatalf("authors=%+v", cfg.Authors)
	}

	s := cfg.Settings()
	if s.MathRenderer != render.MathJax || s.Links.Arxiv != "2301.00001" || s.Links.Code != "https://github.com/example/paper" || s.Links.PDF != "" {
		t.Fatalf("settings=%+v", s)
	}
}

func TestWithDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.SourceDir != DefaultSourceDir || c.WebDir != DefaultWebDir || c.OutputDir != DefaultOutputDir {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(Config{OutputDir: "docs"}); err == nil {
		t.Fatalf("expected error for empty source dir")
	}
	if err := ValidateConfig(Config{SourceDir: "src"}); err == nil {
		t.Fatalf("expected error for empty output dir")
	}
	if err := ValidateConfig(Config{SourceDir: "src/paper", OutputDir: "docs"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
