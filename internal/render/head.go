package render

import "strings"

const fontAwesome = `
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
    `

// katexBundle renders $$ and \[ \] as display math, $ and \( \) inline.
const katexBundle = `
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.8/dist/katex.min.css">
    <script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.8/dist/katex.min.js"></script>
    <script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.8/dist/contrib/auto-render.min.js"></script>
    <script>
        document.addEventListener("DOMContentLoaded", function() {
            renderMathInElement(document.body, {
                delimiters: [
                    {left: "$$", right: "$$", display: true},
                    {left: "$", right: "$", display: false},
                    {left: "\\(", right: "\\)", display: false},
                    {left: "\\[", right: "\\]", display: true}
                ],
                throwOnError: false,
                errorColor: "#cc0000",
                strict: false
            });
        });
    </script>
    `

const mathJaxBundle = `
    <script>
        window.MathJax = {
            tex: {
                inlineMath: [["$", "$"], ["\\(", "\\)"]],
                displayMath: [["$$", "$$"], ["\\[", "\\]"]]
            }
        };
    </script>
    <script src="https://polyfill.io/v3/polyfill.min.js?features=es6"></script>
    <script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>
    `

func (a *Assembler) head(title string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>`)
	b.WriteString(title)
	b.WriteString(`</title>
    <link rel="stylesheet" href="assets/style.css?v=3">
    <link rel="stylesheet" href="assets/theme.css?v=3">
    `)
	b.WriteString(fontAwesome)
	switch a.MathRenderer {
	case KaTeX:
		b.WriteString(katexBundle)
	case MathJax:
		b.WriteString(mathJaxBundle)
	}
	b.WriteString("\n</head>")
	return b.String()
}
