// Package latex turns a LaTeX research-paper source into a structured Document.
//
// The scanner is regex driven and best-effort. Known limitations: command
// arguments containing nested braces are cut at the first closing brace,
// custom macros are not expanded, and conditionals are left as literal text.
// Unrecognised commands pass through unchanged.
package latex

// Level is the heading tier of a Section.
type Level string

const (
	LevelSection       Level = "section"
	LevelSubsection    Level = "subsection"
	LevelSubsubsection Level = "subsubsection"
)

// Author describes one paper author. Configuration decodes directly into it.
type Author struct {
	Name        string `yaml:"name" json:"name"`
	Affiliation string `yaml:"affiliation" json:"affiliation,omitempty"`
	Email       string `yaml:"email" json:"email,omitempty"`
	URL         string `yaml:"url" json:"url,omitempty"`
}

// Section is a heading plus the cleaned text that follows it up to the next heading.
type Section struct {
	Level   Level
	Title   string
	Content string
}

// Figure is a figure environment that contains an image.
type Figure struct {
	Path    string
	Caption string
	Label   string
}

// EquationType is always "equation"; other math environments are not captured.
const EquationType = "equation"

// Equation is the raw body of an equation environment.
type Equation struct {
	Content string
	Type    string
}

// Document is the structured model of one paper. It is built once per
// conversion and not modified afterwards.
type Document struct {
	Title     string
	Authors   []Author
	Abstract  string
	Sections  []Section
	Figures   []Figure
	Equations []Equation
}
