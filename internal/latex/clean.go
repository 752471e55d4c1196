package latex

import (
	"regexp"
	"strconv"
	"strings"
)

// citationMarkup wraps a citation number; the inline style keeps [n] from
// breaking across lines even without the stylesheet.
const citationMarkup = `<span class="citation" style="display: inline-block; white-space: nowrap; color: #0066cc;">[%s]</span>`

var (
	citeRe     = regexp.MustCompile(`\\cite\{([^}]+)\}`)
	percentRe  = regexp.MustCompile(`\\%`)
	labelRe    = regexp.MustCompile(`\\label\{[^}]+\}`)
	equationRe = regexp.MustCompile(`(?s)\\begin\{equation\}(.*?)\\end\{equation\}`)
	alignRe    = regexp.MustCompile(`(?s)\\begin\{align\}(.*?)\\end\{align\}`)

	inlineFormats = []struct {
		re  *regexp.Regexp
		tag string
	}{
		{regexp.MustCompile(`\\textbf\{([^}]+)\}`), "strong"},
		{regexp.MustCompile(`\\textit\{([^}]+)\}`), "em"},
		{regexp.MustCompile(`\\emph\{([^}]+)\}`), "em"},
		{regexp.MustCompile(`\\texttt\{([^}]+)\}`), "code"},
	}

	figureRefRe = regexp.MustCompile(`Figure~\\ref\{([^}]+)\}`)
	refRe       = regexp.MustCompile(`\\ref\{([^}]+)\}`)

	// noiseRes are deleted outright. width= must run before the bare
	// \textwidth token or it can never match.
	noiseRes = []*regexp.Regexp{
		regexp.MustCompile(`\\section\*?\{[^}]*\}`),
		regexp.MustCompile(`\\subsection\*?\{[^}]*\}`),
		regexp.MustCompile(`\\subsubsection\*?\{[^}]*\}`),
		regexp.MustCompile(`\\paragraph\{[^}]*\}`),
		regexp.MustCompile(`\\bibliographystyle\{[^}]*\}`),
		regexp.MustCompile(`\\bibliography\{[^}]*\}`),
		regexp.MustCompile(`\\end\{document\}`),
		regexp.MustCompile(`(?s)\\begin\{figure\}.*?\\end\{figure\}`),
		regexp.MustCompile(`\\includegraphics\[[^\]]*\]\{[^}]*\}`),
		regexp.MustCompile(`\\caption\{[^}]*\}`),
		regexp.MustCompile(`\\centering`),
		regexp.MustCompile(`width=[0-9.]+\\textwidth`),
		regexp.MustCompile(`\\textwidth`),
	}

	spacing = strings.NewReplacer(
		`\qquad`, "  ",
		`\quad`, " ",
		`\,`, " ",
		`\:`, " ",
		`\;`, " ",
	)

	manyBlankLinesRe = regexp.MustCompile(`\n\s*\n\s*\n`)
	spaceRunRe       = regexp.MustCompile(` +`)
)

// Cleaner converts LaTeX fragments into HTML-safe text. Citations are
// numbered through Registry, so one Cleaner serves one conversion.
type Cleaner struct {
	Registry *Registry
}

// NewCleaner returns a Cleaner bound to reg, or to a fresh registry when reg is nil.
func NewCleaner(reg *Registry) *Cleaner {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Cleaner{Registry: reg}
}

// Clean runs the cleaning passes over fragment. The order is significant:
// later passes rely on the output of earlier ones.
func (c *Cleaner) Clean(fragment string) string {
	text := c.numberCitations(fragment)
	text = percentRe.ReplaceAllLiteralString(text, "%")
	text = labelRe.ReplaceAllLiteralString(text, "")
	text = normalizeDisplayMath(text)
	text = formatInline(text)
	text = convertLists(text)
	text = resolveRefs(text)
	text = stripNoise(text)
	text = convertLineBreaks(text)
	text = spacing.Replace(text)
	return normalizeWhitespace(text)
}

func (c *Cleaner) numberCitations(text string) string {
	if c.Registry == nil {
		c.Registry = NewRegistry()
	}
	return replaceGroups(citeRe, text, func(g []string) string {
		n := c.Registry.Number(g[1])
		return strings.Replace(citationMarkup, "%s", strconv.Itoa(n), 1)
	})
}

func normalizeDisplayMath(text string) string {
	text = replaceGroups(equationRe, text, func(g []string) string {
		return displayMath + g[1] + displayMath
	})
	// align keeps its \\ row breaks; the $$ wrapper shields them from the
	// line-break pass.
	return replaceGroups(alignRe, text, func(g []string) string {
		return displayMath + `\begin{align}` + g[1] + `\end{align}` + displayMath
	})
}

func formatInline(text string) string {
	for _, f := range inlineFormats {
		tag := f.tag
		text = replaceGroups(f.re, text, func(g []string) string {
			return "<" + tag + ">" + g[1] + "</" + tag + ">"
		})
	}
	return text
}

func resolveRefs(text string) string {
	text = replaceGroups(figureRefRe, text, func(g []string) string { return "Figure " + g[1] })
	return replaceGroups(refRe, text, func(g []string) string { return g[1] })
}

func stripNoise(text string) string {
	for _, re := range noiseRes {
		text = re.ReplaceAllLiteralString(text, "")
	}
	return text
}

func normalizeWhitespace(text string) string {
	text = manyBlankLinesRe.ReplaceAllLiteralString(text, "\n\n")
	text = spaceRunRe.ReplaceAllLiteralString(text, " ")
	return strings.TrimSpace(text)
}

// replaceGroups is ReplaceAllStringFunc with access to submatches. The
// replacement is inserted literally, so $ in math needs no escaping.
func replaceGroups(re *regexp.Regexp, text string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = text[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
