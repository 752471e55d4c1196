package render

import (
	"strings"

	"golang.org/x/net/html"
)

// RenderBibTeXPage wraps the raw contents of a .bib file in a standalone page.
// The entries are escaped and shown verbatim; they are not parsed.
func RenderBibTeXPage(bib string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>BibTeX Citation</title>
    <link rel="stylesheet" href="assets/style.css">
    <link rel="stylesheet" href="assets/theme.css">
</head>
<body>
    <div class="paper-content">
        <h1>BibTeX Citation</h1>
        `)
	b.WriteString(BibTeXFragment(bib))
	b.WriteString(`
        <a href="index.html" class="btn btn-primary">Back to Paper</a>
    </div>
</body>
</html>
`)
	return b.String()
}

// BibTeXFragment renders bib as an escaped preformatted block.
func BibTeXFragment(bib string) string {
	return `<pre><code class="bibtex">` + html.EscapeString(strings.TrimSpace(bib)) + `</code></pre>`
}
