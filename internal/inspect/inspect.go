// Package inspect reads back a generated paper page and summarises its structure.
package inspect

import (
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Heading is one h1-h6 element.
type Heading struct {
	Level int
	Text  string
}

// Outline is a structural summary of a rendered page.
type Outline struct {
	Title      string
	Headings   []Heading
	Sections   int // <section class="content-section"> elements inside <main>
	References int // bibliography ref-item entries
	Citations  int // inline citation markers
	Figures    int
	MathBlocks int // $$ pairs in text outside script and style
	// Dangling lists citation numbers used in the text that have no
	// bibliography entry, ascending and without repeats.
	Dangling []int
}

// numbers collects citation numbers seen in markers and in the bibliography.
type numbers struct {
	cited    map[int]struct{}
	resolved map[int]struct{}
}

var numberRe = regexp.MustCompile(`\[(\d+)\]`)

// FromHTML parses input and collects its Outline. Unparseable input yields
// an empty Outline.
func FromHTML(input []byte) Outline {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Outline{}
	}
	var o Outline
	nums := numbers{cited: map[int]struct{}{}, resolved: map[int]struct{}{}}
	o.Title = strings.TrimSpace(findTitle(node))
	if main := findFirst(node, "main"); main != nil {
		o.Sections = countClass(main, "section", "content-section")
	}
	walk(node, &o, &nums)
	for n := range nums.cited {
		if _, ok := nums.resolved[n]; !ok {
			o.Dangling = append(o.Dangling, n)
		}
	}
	sort.Ints(o.Dangling)
	return o
}

func walk(n *html.Node, o *Outline, nums *numbers) {
	switch n.Type {
	case html.ElementNode:
		switch name := strings.ToLower(n.Data); name {
		case "script", "style":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			o.Headings = append(o.Headings, Heading{Level: int(name[1] - '0'), Text: strings.TrimSpace(textOf(n))})
		case "figure":
			o.Figures++
		case "div":
			if hasClass(n, "ref-item") {
				o.References++
			}
		case "span":
			switch {
			case hasClass(n, "citation"):
				o.Citations++
				addNumbers(nums.cited, textOf(n))
			case hasClass(n, "ref-num"):
				addNumbers(nums.resolved, textOf(n))
			}
		}
	case html.TextNode:
		o.MathBlocks += strings.Count(n.Data, "$$") / 2
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, o, nums)
	}
}

// addNumbers records every [n] in text; a marker may carry several.
func addNumbers(set map[int]struct{}, text string) {
	for _, m := range numberRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			set[n] = struct{}{}
		}
	}
}

func findTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, tag); res != nil {
			return res
		}
	}
	return nil
}

func countClass(n *html.Node, tag, class string) int {
	count := 0
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) && hasClass(n, class) {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countClass(c, tag, class)
	}
	return count
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
