package render

import (
	"strconv"
	"strings"

	"github.com/hyperifyio/texsite/internal/latex"
)

// bibliography lists cited keys that the catalog knows, by citation number.
// Cited keys missing from the catalog are skipped. With no citations at all
// the whole catalog is listed in its own order.
func (a *Assembler) bibliography(reg *latex.Registry) string {
	lines := []string{
		`<section id="bibtex" class="content-section">`,
		`    <h2>References</h2>`,
		`    <div class="bibliography">`,
	}
	if reg.Len() > 0 {
		for _, c := range reg.Entries() {
			if ref, ok := a.Catalog.Lookup(c.Key); ok {
				lines = append(lines, refItem(c.Number, ref))
			}
		}
	} else {
		for i, e := range a.Catalog.Entries() {
			lines = append(lines, refItem(i+1, e.Reference))
		}
	}
	lines = append(lines, `    </div>`, `</section>`)
	return strings.Join(lines, "\n")
}

func refItem(n int, ref string) string {
	return `        <div class="ref-item"><span class="ref-num">[` + strconv.Itoa(n) + `]</span> ` + ref + `</div>`
}
