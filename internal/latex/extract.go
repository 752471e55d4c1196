package latex

import (
	"regexp"
	"strings"
)

// FallbackTitle is used when neither the source nor the defaults name a title.
const FallbackTitle = "Research Paper"

var (
	titleRe    = regexp.MustCompile(`\\title\{([^}]+)\}`)
	abstractRe = regexp.MustCompile(`(?s)\\begin\{abstract\}(.*?)\\end\{abstract\}`)
	headingRe  = regexp.MustCompile(`\\(section|subsection|subsubsection)\*?\{([^}]+)\}`)
	figureRe   = regexp.MustCompile(`(?s)\\begin\{figure\}(.*?)\\end\{figure\}`)
	graphicsRe = regexp.MustCompile(`\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}`)
	captionRe  = regexp.MustCompile(`\\caption\{([^}]+)\}`)
	labelArgRe = regexp.MustCompile(`\\label\{([^}]+)\}`)
	blankRunRe = regexp.MustCompile(`\n\s*\n`)
)

// Defaults supply document fields the source may lack. Authors from Defaults
// take precedence over the source's \author block.
type Defaults struct {
	Title    string
	Authors  []Author
	Abstract string
}

// Extractor builds a Document from a full LaTeX source.
type Extractor struct {
	Cleaner  *Cleaner
	Defaults Defaults
}

// NewExtractor returns an Extractor that cleans fragments with c.
func NewExtractor(c *Cleaner, d Defaults) *Extractor {
	if c == nil {
		c = NewCleaner(nil)
	}
	return &Extractor{Cleaner: c, Defaults: d}
}

// Extract parses source. Fields are extracted in a fixed order so citations
// in the abstract are numbered before those in the body.
func (e *Extractor) Extract(source string) Document {
	return Document{
		Title:     e.title(source),
		Authors:   e.authors(source),
		Abstract:  e.abstract(source),
		Sections:  e.sections(source),
		Figures:   ExtractFigures(source),
		Equations: ExtractEquations(source),
	}
}

func (e *Extractor) title(source string) string {
	if m := titleRe.FindStringSubmatch(source); m != nil {
		return m[1]
	}
	if t := strings.TrimSpace(e.Defaults.Title); t != "" {
		return t
	}
	return FallbackTitle
}

func (e *Extractor) authors(source string) []Author {
	if len(e.Defaults.Authors) > 0 {
		return append([]Author(nil), e.Defaults.Authors...)
	}
	return parseAuthors(source)
}

func (e *Extractor) abstract(source string) string {
	if m := abstractRe.FindStringSubmatch(source); m != nil {
		return e.Cleaner.Clean(strings.TrimSpace(m[1]))
	}
	return e.Defaults.Abstract
}

// sections cuts source at every heading command of any level. Each section
// owns the text between the end of its heading and the start of the next.
func (e *Extractor) sections(source string) []Section {
	matches := headingRe.FindAllStringSubmatchIndex(source, -1)
	out := make([]Section, 0, len(matches))
	for i, m := range matches {
		end := len(source)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := e.Cleaner.Clean(source[m[1]:end])
		content = strings.TrimSpace(blankRunRe.ReplaceAllLiteralString(content, "\n\n"))
		out = append(out, Section{
			Level:   Level(source[m[2]:m[3]]),
			Title:   source[m[4]:m[5]],
			Content: content,
		})
	}
	return out
}

// ExtractFigures returns every figure environment that includes an image.
// Figures without \includegraphics are skipped.
func ExtractFigures(source string) []Figure {
	var out []Figure
	for _, m := range figureRe.FindAllStringSubmatch(source, -1) {
		body := m[1]
		g := graphicsRe.FindStringSubmatch(body)
		if g == nil {
			continue
		}
		f := Figure{Path: g[1]}
		if c := captionRe.FindStringSubmatch(body); c != nil {
			f.Caption = c[1]
		}
		if l := labelArgRe.FindStringSubmatch(body); l != nil {
			f.Label = l[1]
		}
		out = append(out, f)
	}
	return out
}

// ExtractEquations returns the trimmed body of every equation environment.
func ExtractEquations(source string) []Equation {
	var out []Equation
	for _, m := range equationRe.FindAllStringSubmatch(source, -1) {
		out = append(out, Equation{Content: strings.TrimSpace(m[1]), Type: EquationType})
	}
	return out
}
