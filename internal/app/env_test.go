package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("TEXSITE_FOO", "")
	t.Setenv("TEXSITE_BAR", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nTEXSITE_FOO=alpha\nTEXSITE_BAR=\"beta\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("TEXSITE_FOO"); got != "alpha" {
		t.Fatalf("TEXSITE_FOO=%q, want alpha", got)
	}
	if got := os.Getenv("TEXSITE_BAR"); got != "beta" {
		t.Fatalf("TEXSITE_BAR=%q, want beta", got)
	}
}

// Later files override earlier ones; missing files are skipped.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("TEXSITE_K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("TEXSITE_K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("TEXSITE_K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}
	if err := LoadEnvFiles(a, filepath.Join(dir, "missing"), b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("TEXSITE_K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TEXSITE_MATH_RENDERER", "mathjax")
	t.Setenv("TEXSITE_THEME", "academic")
	t.Setenv("TEXSITE_OUTPUT_DIR", "public")
	t.Setenv("TEXSITE_SOURCE_DIR", "")
	t.Setenv("TEXSITE_VERBOSE", "yes")

	cfg := Config{MathRenderer: "katex", SourceDir: "keep", OutputDir: "docs"}
	ApplyEnvOverrides(&cfg)
	if cfg.MathRenderer != "mathjax" || cfg.Theme != "academic" || cfg.OutputDir != "public" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.SourceDir != "keep" {
		t.Fatalf("empty env overrode SourceDir: %q", cfg.SourceDir)
	}
	if !cfg.Verbose {
		t.Fatalf("TEXSITE_VERBOSE=yes not applied")
	}
}
