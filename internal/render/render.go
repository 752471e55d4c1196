// Package render assembles a latex.Document into a complete HTML page.
//
// Rendering never fails. Missing optional fields produce an empty region.
package render

import (
	"strings"

	"github.com/hyperifyio/texsite/internal/latex"
)

// MathRenderer selects the client-side math bundle written into <head>.
type MathRenderer string

const (
	KaTeX   MathRenderer = "katex"
	MathJax MathRenderer = "mathjax"

	DefaultMathRenderer = KaTeX
)

// ParseMathRenderer normalises a configured name. Empty selects the default;
// unknown names are returned as-is and render no math bundle.
func ParseMathRenderer(s string) MathRenderer {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return DefaultMathRenderer
	}
	return MathRenderer(v)
}

// Links are the optional buttons under the title.
type Links struct {
	PDF   string // defaults to paper.pdf
	Code  string
	Arxiv string // arXiv id or URL
}

// DefaultTOCMin is the section count at which a table of contents is added.
const DefaultTOCMin = 6

// Assembler renders documents. The zero value renders with no math bundle,
// an empty catalog and no table of contents; use New for the defaults.
type Assembler struct {
	MathRenderer MathRenderer
	Links        Links
	Catalog      latex.Catalog
	// TOCMin is the minimum number of sections for a table of contents; 0 disables it.
	TOCMin int
}

// New returns an Assembler with the default catalog and table-of-contents threshold.
func New(mr MathRenderer, links Links) *Assembler {
	return &Assembler{
		MathRenderer: mr,
		Links:        links,
		Catalog:      latex.DefaultCatalog(),
		TOCMin:       DefaultTOCMin,
	}
}

// Render produces the full page. reg is the registry the document's text was
// cleaned with; a nil or empty registry lists the whole catalog.
func (a *Assembler) Render(doc latex.Document, reg *latex.Registry) string {
	anchors := sectionAnchors(doc.Sections)
	parts := []string{
		a.head(doc.Title),
		"<body>",
		a.header(doc),
		renderAbstract(doc.Abstract),
		renderTOC(doc.Sections, anchors, a.TOCMin),
		renderContent(doc.Sections, anchors),
		renderFigures(doc.Figures),
		a.bibliography(reg),
		footer,
		"</body>",
		"</html>",
	}
	return strings.Join(parts, "\n")
}

const footer = `
<footer class="paper-footer">
    <p>Generated with Research Paper Template</p>
</footer>
`

func renderAbstract(abstract string) string {
	if abstract == "" {
		return ""
	}
	return `
<section class="abstract">
    <h2>Abstract</h2>
    <p>` + abstract + `</p>
</section>
`
}
