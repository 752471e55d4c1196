package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/hyperifyio/texsite/internal/latex"
)

// renderFigures lists extracted figures in document order. Captions are raw
// LaTeX, so they are escaped; inline $...$ still reaches the math renderer.
func renderFigures(figs []latex.Figure) string {
	if len(figs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`
<section class="content-section figures">
    <h2>Figures</h2>`)
	for i, f := range figs {
		b.WriteString("\n    <figure class=\"figure\"")
		if id := makeSlug(f.Label); id != "" {
			b.WriteString(` id="`)
			b.WriteString(id)
			b.WriteString(`"`)
		}
		b.WriteString(">\n        <img src=\"")
		b.WriteString(html.EscapeString(f.Path))
		b.WriteString("\" alt=\"")
		b.WriteString(html.EscapeString(f.Caption))
		b.WriteString("\" loading=\"lazy\">")
		b.WriteString("\n        <figcaption class=\"figure-caption\">Figure ")
		b.WriteString(strconv.Itoa(i + 1))
		if f.Caption != "" {
			b.WriteString(": ")
			b.WriteString(html.EscapeString(f.Caption))
		}
		b.WriteString("</figcaption>\n    </figure>")
	}
	b.WriteString(`
</section>
`)
	return b.String()
}
