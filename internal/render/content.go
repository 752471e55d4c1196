package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperifyio/texsite/internal/latex"
)

const emptyContent = `
<main class="paper-content">
    <section class="content-section">
        <h2>Content</h2>
        <p>Paper content will be rendered here...</p>
    </section>
</main>
`

var paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)

func headingTag(l latex.Level) string {
	switch l {
	case latex.LevelSubsection:
		return "h3"
	case latex.LevelSubsubsection:
		return "h4"
	default:
		return "h2"
	}
}

func renderContent(sections []latex.Section, anchors []string) string {
	if len(sections) == 0 {
		return emptyContent
	}
	out := []string{`<main class="paper-content">`}
	for i, s := range sections {
		tag := headingTag(s.Level)
		out = append(out, fmt.Sprintf(`
    <section class="content-section" id="%s">
        <%s>%s</%s>
        %s
    </section>`, anchors[i], tag, s.Title, tag, strings.Join(paragraphs(s.Content), "")))
	}
	out = append(out, "</main>")
	return strings.Join(out, "\n")
}

// paragraphs splits cleaned section text into HTML blocks. Display math is
// swapped for placeholders first so a blank line inside $$...$$ cannot split
// the block.
func paragraphs(content string) []string {
	if content == "" {
		return nil
	}
	protected, blocks := protectDisplayMath(content)
	var out []string
	for _, part := range paragraphBreakRe.Split(protected, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, classify(restoreDisplayMath(part, blocks)))
	}
	return out
}

func classify(part string) string {
	switch {
	case strings.HasPrefix(part, "<ol>"), strings.HasPrefix(part, "<ul>"):
		return part
	case strings.HasPrefix(part, "- "), strings.HasPrefix(part, "• "):
		return bulletList(part)
	case strings.HasPrefix(part, "$$") && strings.HasSuffix(part, "$$"):
		return part
	default:
		return "<p>" + part + "</p>"
	}
}

func bulletList(part string) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, line := range strings.Split(part, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(strings.TrimLeft(line, "- •"))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func mathPlaceholder(i int) string {
	return fmt.Sprintf("\x00MATHBLOCK%d\x00", i)
}

// protectDisplayMath replaces each closed $$...$$ block with a placeholder.
// An opening $$ with no partner is left in place as plain text.
func protectDisplayMath(content string) (string, []string) {
	var b strings.Builder
	var blocks []string
	pos := 0
	for {
		start := strings.Index(content[pos:], "$$")
		if start < 0 {
			b.WriteString(content[pos:])
			break
		}
		start += pos
		end := strings.Index(content[start+2:], "$$")
		if end < 0 {
			b.WriteString(content[pos:])
			break
		}
		end += start + 2
		b.WriteString(content[pos:start])
		b.WriteString(mathPlaceholder(len(blocks)))
		blocks = append(blocks, content[start:end+2])
		pos = end + 2
	}
	return b.String(), blocks
}

func restoreDisplayMath(part string, blocks []string) string {
	if !strings.Contains(part, "\x00") {
		return part
	}
	for i, m := range blocks {
		part = strings.Replace(part, mathPlaceholder(i), m, 1)
	}
	return part
}
