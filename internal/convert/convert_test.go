package convert

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/texsite/internal/latex"
	"github.com/hyperifyio/texsite/internal/render"
)

const paper = `
\title{Advanced Research Paper}
\author{Dr. John Doe \\ University of Example \and Dr. Jane Smith \\ Another University}
\begin{document}
\begin{abstract}
This is a comprehensive abstract \cite{wertz2011space}.
\end{abstract}
\section{Introduction}
Prior work \cite{izzo2019machine} and \cite{wertz2011space} and \cite{madeup2021}.
\begin{itemize}
\item One
\item Two
\end{itemize}
\section{Method}
\begin{equation}
a = b \\ c
\end{equation}
\end{document}
`

func TestConvert_EndToEnd(t *testing.T) {
	res := ConvertDocument(paper, Settings{})
	out := res.HTML

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Advanced Research Paper</title>")
	assert.Contains(t, out, "Dr. John Doe")
	assert.Contains(t, out, "Dr. Jane Smith")
	assert.Contains(t, out, "comprehensive abstract")
	assert.Contains(t, out, "katex")
	assert.Contains(t, out, "<ul><li>One</li><li>Two</li></ul>")
	assert.Contains(t, out, `$$
a = b \\ c
$$`)

	assert.Equal(t, []latex.Citation{{Key: "wertz2011space", Number: 1}, {Key: "izzo2019machine", Number: 2}, {Key: "madeup2021", Number: 3}}, res.Citations)
	// madeup2021 is numbered in text but has no catalog entry
	assert.Contains(t, out, "[3]</span>.")
	assert.Equal(t, 2, strings.Count(out, `class="ref-item"`))
	assert.Less(t, strings.Index(out, "[1]</span> Wertz"), strings.Index(out, "[2]</span> Izzo"))
}

func TestConvert_SettingsApplied(t *testing.T) {
	s := Settings{
		Title:        "Configured Title",
		Authors:      []latex.Author{{Name: "Config Author", Affiliation: "Lab"}},
		Abstract:     "Configured abstract.",
		MathRenderer: render.MathJax,
		Links:        render.Links{Arxiv: "2301.00001"},
	}
	out := Convert(`\section{Only}text`, s)
	assert.Contains(t, out, "<title>Configured Title</title>")
	assert.Contains(t, out, "Config Author<sup>1</sup>")
	assert.Contains(t, out, "<p>Configured abstract.</p>")
	assert.Contains(t, out, "mathjax")
	assert.NotContains(t, out, "katex")
	assert.Contains(t, out, "https://arxiv.org/abs/2301.00001")
}

func TestConvert_NumberingRestartsPerCall(t *testing.T) {
	a := ConvertDocument(`\section{S}\cite{x} \cite{y}`, Settings{})
	b := ConvertDocument(`\section{S}\cite{y}`, Settings{})
	assert.Equal(t, 2, a.Citations[1].Number)
	require.Len(t, b.Citations, 1)
	assert.Equal(t, latex.Citation{Key: "y", Number: 1}, b.Citations[0])
}

func TestConvert_ConcurrentCallsIsolated(t *testing.T) {
	var wg sync.WaitGroup
	results := make([][]latex.Citation, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ConvertDocument(`\section{S}\cite{k1} \cite{k2} \cite{k1}`, Settings{}).Citations
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, []latex.Citation{{Key: "k1", Number: 1}, {Key: "k2", Number: 2}}, r)
	}
}

func TestConvert_TOC(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString("\\section{S}\nbody\n")
	}
	assert.NotContains(t, Convert(b.String(), Settings{}), `class="toc"`)
	assert.Contains(t, Convert(b.String(), Settings{TOCMin: 3}), `class="toc"`)
	assert.NotContains(t, Convert(b.String(), Settings{TOCMin: -1}), `class="toc"`)
}

func TestConvert_NormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent
	out := Convert("\\title{Caf\u0065\u0301}", Settings{})
	assert.Contains(t, out, "<title>Caf\u00e9</title>")
}

func TestConvert_EmptySource(t *testing.T) {
	out := Convert("", Settings{})
	assert.Contains(t, out, "<title>Research Paper</title>")
	assert.Contains(t, out, "Paper content will be rendered here...")
	assert.NotContains(t, out, `class="abstract"`)
	// no citations: whole catalog listed
	assert.Equal(t, 10, strings.Count(out, `class="ref-item"`))
}
