package latex

import (
	"regexp"
	"strings"
)

const authorCmd = `\author{`

var (
	andRe         = regexp.MustCompile(`\\and\s*`)
	superscriptRe = regexp.MustCompile(`\\textsuperscript\{[^}]*\}`)
	inlineMathRe  = regexp.MustCompile(`\$[^$]*\$`)
	oneArgCmdRe   = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)
)

// parseAuthors is the fallback used when configuration lists no authors.
// Each \and block contributes its first \\-delimited line as a name once
// commands are stripped. Blocks that end up empty are dropped. Affiliation,
// email and URL are never recovered from the source.
func parseAuthors(source string) []Author {
	i := strings.Index(source, authorCmd)
	if i < 0 {
		return nil
	}
	body, ok := braceGroup(source[i+len(authorCmd)-1:])
	if !ok {
		return nil
	}
	var out []Author
	for _, block := range andRe.Split(body, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		name := firstLine(block)
		name = superscriptRe.ReplaceAllLiteralString(name, "")
		name = inlineMathRe.ReplaceAllLiteralString(name, "")
		name = oneArgCmdRe.ReplaceAllLiteralString(name, "")
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, Author{Name: name})
		}
	}
	return out
}

// braceGroup returns the contents of the balanced {...} group that s starts
// with. Escaped braces are not special-cased.
func braceGroup(s string) (string, bool) {
	if !strings.HasPrefix(s, "{") {
		return "", false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], true
			}
		}
	}
	return "", false
}

func firstLine(block string) string {
	for _, line := range strings.Split(block, lineBreak) {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}
