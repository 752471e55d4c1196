package render

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/texsite/internal/latex"
)

// sectionAnchors returns a unique id per section, in section order.
func sectionAnchors(sections []latex.Section) []string {
	seen := make(map[string]int, len(sections))
	out := make([]string, len(sections))
	for i, s := range sections {
		slug := makeSlug(s.Title)
		if slug == "" {
			slug = "section"
		}
		seen[slug]++
		if n := seen[slug]; n > 1 {
			slug += "-" + strconv.Itoa(n)
		}
		out[i] = slug
	}
	return out
}

// renderTOC lists every section when there are at least minSections of them.
// Subsections are indented by their class.
func renderTOC(sections []latex.Section, anchors []string, minSections int) string {
	if minSections <= 0 || len(sections) < minSections {
		return ""
	}
	var b strings.Builder
	b.WriteString(`
<nav class="toc">
    <h2>Contents</h2>
    <ul>`)
	for i, s := range sections {
		b.WriteString("\n        <li class=\"toc-")
		b.WriteString(string(s.Level))
		b.WriteString("\"><a href=\"#")
		b.WriteString(anchors[i])
		b.WriteString("\">")
		b.WriteString(s.Title)
		b.WriteString("</a></li>")
	}
	b.WriteString(`
    </ul>
</nav>
`)
	return b.String()
}

// makeSlug lowercases s, folds accented letters to ASCII, turns separators
// into single hyphens and drops everything else.
func makeSlug(s string) string {
	// transformers carry state, so each call builds its own chain
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		switch r {
		case ' ', '-', '_', ':', '.', '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
