package latex

import "strings"

const (
	displayMath = "$$"
	lineBreak   = `\\`
)

// mathState is the scanner position relative to a $$ span. Spans do not nest,
// so two states are enough.
type mathState int

const (
	outsideMath mathState = iota
	insideMath
)

// convertLineBreaks turns \\ into a newline outside $$...$$ spans and leaves it
// alone inside them. A $$ that has no closing $$ later in the text does not
// open a span, so the rest of the text is treated as prose.
func convertLineBreaks(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	state := outsideMath
	for i := 0; i < len(text); {
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, displayMath):
			if state == outsideMath {
				if strings.Contains(rest[len(displayMath):], displayMath) {
					state = insideMath
				}
			} else {
				state = outsideMath
			}
			b.WriteString(displayMath)
			i += len(displayMath)
		case strings.HasPrefix(rest, lineBreak):
			if state == insideMath {
				b.WriteString(lineBreak)
			} else {
				b.WriteByte('\n')
			}
			i += len(lineBreak)
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}
