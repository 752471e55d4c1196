package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/hyperifyio/texsite/internal/latex"
)

const defaultPDFLink = "paper.pdf"

func (a *Assembler) header(doc latex.Document) string {
	var names []string
	var affiliations []string
	for i, au := range doc.Authors {
		name := au.Name
		if au.URL != "" {
			name = `<a href="` + html.EscapeString(au.URL) + `" target="_blank">` + au.Name + `</a>`
		}
		// Affiliations are keyed by author position, so two authors at the
		// same institution get two entries.
		if au.Affiliation != "" {
			n := strconv.Itoa(i + 1)
			name += "<sup>" + n + "</sup>"
			affiliations = append(affiliations, "<sup>"+n+"</sup>"+au.Affiliation)
		}
		names = append(names, name)
	}

	var b strings.Builder
	b.WriteString(`
<header class="paper-header">
    <h1 class="paper-title">`)
	b.WriteString(doc.Title)
	b.WriteString(`</h1>
    <div class="paper-authors">
        `)
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(`
    </div>`)
	if len(affiliations) > 0 {
		b.WriteString(`
    <div class="paper-affiliations">
        `)
		b.WriteString(strings.Join(affiliations, " • "))
		b.WriteString(`
    </div>`)
	}
	b.WriteString(a.links())
	b.WriteString(`
</header>
`)
	return b.String()
}

func (a *Assembler) links() string {
	pdf := strings.TrimSpace(a.Links.PDF)
	if pdf == "" {
		pdf = defaultPDFLink
	}
	var b strings.Builder
	b.WriteString(`
    <div class="paper-links">`)
	writeLink(&b, pdf, "fas fa-file-pdf", "PDF")
	writeLink(&b, "#bibtex", "fas fa-quote-right", "BibTeX")
	if code := strings.TrimSpace(a.Links.Code); code != "" {
		writeLink(&b, code, "fab fa-github", "Code")
	}
	if ax := arxivURL(a.Links.Arxiv); ax != "" {
		writeLink(&b, ax, "fas fa-scroll", "arXiv")
	}
	b.WriteString(`
    </div>`)
	return b.String()
}

func writeLink(b *strings.Builder, href, icon, label string) {
	b.WriteString("\n        <a href=\"")
	b.WriteString(html.EscapeString(href))
	b.WriteString("\"><i class=\"")
	b.WriteString(icon)
	b.WriteString("\"></i> ")
	b.WriteString(label)
	b.WriteString("</a>")
}

// arxivURL turns an arXiv id or URL into the canonical abstract page URL.
// PDF links are rewritten to their /abs/ form; other URLs pass through.
func arxivURL(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "https://arxiv.org/abs/" + strings.TrimPrefix(lower, "arxiv:")
	}
	for _, prefix := range []string{"https://arxiv.org/pdf/", "http://arxiv.org/pdf/"} {
		if strings.HasPrefix(lower, prefix) {
			core := strings.TrimSuffix(v[len(prefix):], ".pdf")
			return "https://arxiv.org/abs/" + core
		}
	}
	return v
}
