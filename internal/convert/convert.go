// Package convert is the single entry point of the LaTeX to HTML engine.
package convert

import (
	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/texsite/internal/latex"
	"github.com/hyperifyio/texsite/internal/render"
)

// Settings carry the configuration the engine consumes.
type Settings struct {
	Title        string
	Authors      []latex.Author
	Abstract     string
	MathRenderer render.MathRenderer
	Links        render.Links
	// TOCMin overrides the table-of-contents threshold; 0 keeps the default,
	// a negative value disables the table.
	TOCMin int
}

// Result is the outcome of one conversion.
type Result struct {
	HTML      string
	Document  latex.Document
	Citations []latex.Citation
}

// Convert renders source as a complete HTML page.
func Convert(source string, s Settings) string {
	return ConvertDocument(source, s).HTML
}

// ConvertDocument is Convert that also returns the extracted document and the
// citation numbering. Every call uses its own registry, so numbering restarts
// at 1 and concurrent calls do not interfere.
func ConvertDocument(source string, s Settings) Result {
	source = norm.NFC.String(source)

	reg := latex.NewRegistry()
	ex := latex.NewExtractor(latex.NewCleaner(reg), latex.Defaults{
		Title:    s.Title,
		Authors:  s.Authors,
		Abstract: s.Abstract,
	})
	doc := ex.Extract(source)

	mr := s.MathRenderer
	if mr == "" {
		mr = render.DefaultMathRenderer
	}
	asm := render.New(mr, s.Links)
	switch {
	case s.TOCMin > 0:
		asm.TOCMin = s.TOCMin
	case s.TOCMin < 0:
		asm.TOCMin = 0
	}
	return Result{
		HTML:      asm.Render(doc, reg),
		Document:  doc,
		Citations: reg.Entries(),
	}
}
