package app

import (
	"strings"

	"github.com/hyperifyio/texsite/internal/convert"
	"github.com/hyperifyio/texsite/internal/latex"
	"github.com/hyperifyio/texsite/internal/render"
)

const (
	DefaultConfigPath = "config.yaml"
	DefaultSourceDir  = "src/paper"
	DefaultWebDir     = "src/web"
	DefaultOutputDir  = "docs"
)

// Config is the resolved runtime configuration of a site build.
type Config struct {
	ConfigPath string
	SourceDir  string // LaTeX sources, figures/ and bibliography.bib
	WebDir     string // optional assets/ to copy instead of the default CSS
	OutputDir  string

	MathRenderer string
	Theme        string
	TOCMin       int
	Verbose      bool

	// Paper metadata used when the LaTeX source does not provide it
	Title    string
	Authors  []latex.Author
	Abstract string
	ArxivID  string
	CodeURL  string
	PDFURL   string
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.SourceDir) == "" {
		c.SourceDir = DefaultSourceDir
	}
	if strings.TrimSpace(c.WebDir) == "" {
		c.WebDir = DefaultWebDir
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = DefaultOutputDir
	}
	return c
}

// Settings maps the configuration onto what the conversion engine consumes.
func (c Config) Settings() convert.Settings {
	return convert.Settings{
		Title:        c.Title,
		Authors:      c.Authors,
		Abstract:     c.Abstract,
		MathRenderer: render.ParseMathRenderer(c.MathRenderer),
		Links: render.Links{
			PDF:   c.PDFURL,
			Code:  c.CodeURL,
			Arxiv: c.ArxivID,
		},
		TOCMin: c.TOCMin,
	}
}
