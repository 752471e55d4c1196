package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/texsite/internal/convert"
	"github.com/hyperifyio/texsite/internal/inspect"
	"github.com/hyperifyio/texsite/internal/latex"
	"github.com/hyperifyio/texsite/internal/render"
	"github.com/hyperifyio/texsite/internal/theme"
)

// ErrMissingInput is returned when there is no LaTeX source to convert.
var ErrMissingInput = errors.New("missing input")

// IndexFile is the page every conversion writes into its output directory.
const IndexFile = "index.html"

type App struct {
	cfg   Config
	theme theme.Profile
	now   func() time.Time
}

func New(ctx context.Context, cfg Config) (*App, error) {
	cfg = cfg.withDefaults()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	switch mr := render.ParseMathRenderer(cfg.MathRenderer); mr {
	case render.KaTeX, render.MathJax:
	default:
		log.Warn().Str("math_renderer", string(mr)).Msg("unknown math renderer; pages will load no math bundle")
	}
	a := &App{cfg: cfg, theme: theme.GetProfile(cfg.Theme), now: time.Now}
	log.Debug().
		Str("source", cfg.SourceDir).
		Str("output", cfg.OutputDir).
		Str("theme", string(a.theme.Type)).
		Msg("site builder ready")
	return a, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run builds the website: assets, the converted paper, figures, the BibTeX
// page and the build manifest.
func (a *App) Run(ctx context.Context) error {
	log.Info().Str("output", a.cfg.OutputDir).Msg("building research paper website")
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := a.writeAssets(); err != nil {
		return err
	}

	mainTex, err := FindMainTex(a.cfg.SourceDir)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := ConvertFile(mainTex, a.cfg.OutputDir, a.cfg.Settings())
	if err != nil {
		return err
	}
	log.Info().Str("input", mainTex).Str("output", out.Path).Msg("converted LaTeX to HTML")

	copied, err := replaceDir(filepath.Join(a.cfg.SourceDir, "figures"), filepath.Join(a.cfg.OutputDir, "figures"))
	if err != nil {
		return err
	}
	if copied {
		log.Info().Msg("copied figures")
	}
	if err := a.writeBibTeXPage(); err != nil {
		return err
	}
	if err := a.writeManifest(mainTex, out); err != nil {
		log.Warn().Err(err).Msg("manifest write failed")
	}

	o := inspect.FromHTML([]byte(out.HTML))
	if len(o.Dangling) > 0 {
		log.Warn().Ints("numbers", o.Dangling).Msg("citations without a reference entry")
	}
	log.Info().
		Str("title", o.Title).
		Int("sections", o.Sections).
		Int("citations", len(out.Citations)).
		Int("references", o.References).
		Int("figures", o.Figures).
		Msg("website built")
	return nil
}

// writeAssets copies assets/ from the web directory, or writes the default
// stylesheet and the theme stylesheet when there is none.
func (a *App) writeAssets() error {
	dst := filepath.Join(a.cfg.OutputDir, "assets")
	copied, err := replaceDir(filepath.Join(a.cfg.WebDir, "assets"), dst)
	if err != nil {
		return err
	}
	if copied {
		log.Info().Msg("copied assets")
		return nil
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create assets dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dst, "style.css"), []byte(theme.BaseCSS), 0o644); err != nil {
		return fmt.Errorf("write style.css: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dst, "theme.css"), []byte(a.theme.CSS), 0o644); err != nil {
		return fmt.Errorf("write theme.css: %w", err)
	}
	log.Info().Str("theme", string(a.theme.Type)).Msg("created default assets")
	return nil
}

func (a *App) writeBibTeXPage() error {
	b, err := os.ReadFile(filepath.Join(a.cfg.SourceDir, "bibliography.bib"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read bibliography: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.cfg.OutputDir, "bibtex.html"), []byte(render.RenderBibTeXPage(string(b))), 0o644); err != nil {
		return fmt.Errorf("write bibtex page: %w", err)
	}
	log.Info().Msg("generated BibTeX page")
	return nil
}

func (a *App) writeManifest(source string, out Output) error {
	meta := newManifestMeta(source, out.Source, out.Result, string(a.cfg.Settings().MathRenderer), string(a.theme.Type), a.now())
	b, err := marshalManifestJSON(meta, buildManifestCitations(out.Citations, latex.DefaultCatalog()))
	if err != nil {
		return err
	}
	return os.WriteFile(deriveManifestSidecarPath(out.Path), b, 0o644)
}

// Output is one converted file.
type Output struct {
	Path   string // written page
	Source []byte // LaTeX as read
	convert.Result
}

// ConvertFile reads a LaTeX file, converts it and writes outDir/index.html,
// creating outDir as needed.
func ConvertFile(input, outDir string, s convert.Settings) (Output, error) {
	src, err := os.ReadFile(input)
	if errors.Is(err, os.ErrNotExist) {
		return Output{}, fmt.Errorf("%s: %w", input, ErrMissingInput)
	}
	if err != nil {
		return Output{}, fmt.Errorf("read %s: %w", input, err)
	}
	res := convert.ConvertDocument(string(src), s)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Output{}, fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, IndexFile)
	if err := os.WriteFile(path, []byte(res.HTML), 0o644); err != nil {
		return Output{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Output{Path: path, Source: src, Result: res}, nil
}
