package latex

import (
	"regexp"
	"strings"
)

var (
	itemizeRe   = regexp.MustCompile(`(?s)\\begin\{itemize\}(.*?)\\end\{itemize\}`)
	enumerateRe = regexp.MustCompile(`(?s)\\begin\{enumerate\}(.*?)\\end\{enumerate\}`)
	itemRe      = regexp.MustCompile(`\\item\s*`)
)

func convertLists(text string) string {
	text = replaceGroups(itemizeRe, text, func(g []string) string { return listHTML("ul", g[1]) })
	return replaceGroups(enumerateRe, text, func(g []string) string { return listHTML("ol", g[1]) })
}

// listHTML splits body on \item and wraps every non-empty item. A body with no
// items renders as nothing.
func listHTML(tag, body string) string {
	var items []string
	for _, part := range itemRe.Split(body, -1) {
		if s := strings.TrimSpace(part); s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, it := range items {
		b.WriteString("<li>")
		b.WriteString(it)
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}
