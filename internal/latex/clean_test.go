package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marker(n string) string {
	return strings.Replace(citationMarkup, "%s", n, 1)
}

func TestClean_CitationNumberingIsStable(t *testing.T) {
	c := NewCleaner(nil)
	out := c.Clean(`See \cite{keyB}, then \cite{keyA} and again \cite{keyB}.`)

	want := "See " + marker("1") + ", then " + marker("2") + " and again " + marker("1") + "."
	assert.Equal(t, want, out)
	assert.Equal(t, []Citation{{"keyB", 1}, {"keyA", 2}}, c.Registry.Entries())
}

func TestClean_CitationNumbersPersistAcrossFragments(t *testing.T) {
	c := NewCleaner(nil)
	c.Clean(`\cite{a}`)
	out := c.Clean(`\cite{b} \cite{a}`)
	assert.Equal(t, marker("2")+" "+marker("1"), out)
}

func TestClean_MultiKeyCitationIsOneKey(t *testing.T) {
	c := NewCleaner(nil)
	out := c.Clean(`\cite{a,b}`)
	assert.Equal(t, marker("1"), out)
	n, ok := c.Registry.Lookup("a,b")
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestClean_LineBreakGuardedByMath(t *testing.T) {
	c := NewCleaner(nil)
	out := c.Clean(`$$a \\ b$$ text \\ more`)
	assert.Equal(t, "$$a \\\\ b$$ text \n more", out)
}

func TestClean_UnclosedDisplayMathIsProse(t *testing.T) {
	c := NewCleaner(nil)
	out := c.Clean(`one $$ two \\ three`)
	assert.Equal(t, "one $$ two \n three", out)
}

func TestClean_EquationAndAlign(t *testing.T) {
	c := NewCleaner(nil)

	out := c.Clean("\\begin{equation}\nE = mc^2\n\\label{eq:e}\n\\end{equation}")
	assert.Equal(t, "$$\nE = mc^2\n\n$$", out)

	out = c.Clean(`\begin{align}a &= b \\ c &= d\end{align}`)
	assert.Equal(t, `$$\begin{align}a &= b \\ c &= d\end{align}$$`, out)
}

func TestClean_InlineFormatting(t *testing.T) {
	c := NewCleaner(nil)
	out := c.Clean(`\textbf{bold} \textit{it} \emph{em} \texttt{code}`)
	assert.Equal(t, "<strong>bold</strong> <em>it</em> <em>em</em> <code>code</code>", out)
}

func TestClean_ItemizeBecomesList(t *testing.T) {
	c := NewCleaner(nil)
	out := c.Clean("\\begin{itemize}\n\\item First\n\\item Second\n\\item Third\n\\end{itemize}")
	assert.Equal(t, "<ul><li>First</li><li>Second</li><li>Third</li></ul>", out)
	assert.Equal(t, 3, strings.Count(out, "<li>"))
	assert.NotContains(t, out, "<li></li>")
}

func TestClean_EnumerateAndEmptyList(t *testing.T) {
	c := NewCleaner(nil)
	assert.Equal(t, "<ol><li>a</li><li>b</li></ol>", c.Clean(`\begin{enumerate}\item a \item b\end{enumerate}`))
	assert.Equal(t, "", c.Clean("\\begin{itemize}\n\\end{itemize}"))
}

func TestClean_References(t *testing.T) {
	c := NewCleaner(nil)
	assert.Equal(t, "As Figure fig:a and sec:b show", c.Clean(`As Figure~\ref{fig:a} and \ref{sec:b} show`))
}

func TestClean_RemovesStructuralNoise(t *testing.T) {
	c := NewCleaner(nil)
	in := `\section*{Intro}Body 50\% done.
\begin{figure}[h]
\centering
\includegraphics[width=0.8\textwidth]{figures/a.png}
\caption{A caption}
\end{figure}
\includegraphics[scale=1]{b.png}\caption{loose}\centering
\bibliographystyle{plain}
\bibliography{refs}
\end{document}`
	assert.Equal(t, "Body 50% done.", c.Clean(in))
}

func TestClean_SpacingAndWhitespace(t *testing.T) {
	c := NewCleaner(nil)
	// spacing commands become spaces, then space runs collapse
	assert.Equal(t, "a b c d e", c.Clean(`a\,b\;c\quad d\qquad e`))
	assert.Equal(t, "p1\n\np2", c.Clean("  p1\n\n\n\n  \np2  "))
	assert.Equal(t, "x y", c.Clean("x     y"))
}

func TestConvertLineBreaks_States(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `a\\b`, "a\nb"},
		{"inside", `$$x\\y$$`, `$$x\\y$$`},
		{"after close", `$$x$$\\y`, "$$x$$\ny"},
		{"two spans", `$$a\\b$$ c\\d $$e\\f$$`, "$$a\\\\b$$ c\nd $$e\\\\f$$"},
		{"unclosed", `$$a$$ b $$ c\\d`, "$$a$$ b $$ c\nd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertLineBreaks(tt.in))
		})
	}
}
