// Package theme holds the stylesheets written when a site has no assets of its own.
package theme

// BaseCSS is written to assets/style.css. It styles every class the page
// renderer emits; theme CSS only overrides colours and fonts.
const BaseCSS = `
/* Reset and base styles */
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.6;
    color: #333;
    background-color: #fff;
}

/* Header styles */
.paper-header {
    text-align: center;
    padding: 2rem 0;
    border-bottom: 1px solid #eee;
    margin-bottom: 2rem;
}

.paper-title {
    font-size: 2.5rem;
    font-weight: 700;
    margin-bottom: 1rem;
    color: #1a1a1a;
}

.paper-authors {
    font-size: 1.1rem;
    color: #666;
    margin-bottom: 0.5rem;
}

.paper-affiliations {
    font-size: 0.95rem;
    color: #888;
    margin-bottom: 1.5rem;
}

.paper-links {
    display: flex;
    justify-content: center;
    flex-wrap: wrap;
    gap: 1rem;
}

.paper-links a {
    color: inherit;
    text-decoration: none;
    font-weight: 500;
}

.btn {
    padding: 0.5rem 1rem;
    text-decoration: none;
    border-radius: 4px;
    font-weight: 500;
    transition: all 0.2s;
}

.btn-primary {
    background-color: #007bff;
    color: white;
}

.btn-primary:hover {
    background-color: #0056b3;
}

.btn-secondary {
    background-color: #6c757d;
    color: white;
}

.btn-secondary:hover {
    background-color: #545b62;
}

/* Content styles */
.paper-content,
.abstract,
.toc,
#bibtex,
.figures {
    max-width: 800px;
    margin-left: auto;
    margin-right: auto;
}

.paper-content {
    padding: 0 2rem;
}

.abstract {
    background-color: #f8f9fa;
    padding: 2rem;
    border-radius: 8px;
    margin-bottom: 2rem;
}

.abstract h2 {
    color: #495057;
    margin-bottom: 1rem;
}

.content-section {
    margin-bottom: 3rem;
}

.content-section h2 {
    color: #343a40;
    margin-bottom: 1rem;
    padding-bottom: 0.5rem;
    border-bottom: 2px solid #007bff;
}

.content-section p,
.content-section ul,
.content-section ol {
    margin-bottom: 1rem;
}

.content-section ul,
.content-section ol {
    padding-left: 1.5rem;
}

/* Table of contents */
.toc {
    padding: 1rem 2rem;
    margin-bottom: 2rem;
    border-left: 3px solid #007bff;
}

.toc ul {
    list-style: none;
}

.toc-subsection {
    padding-left: 1rem;
}

.toc-subsubsection {
    padding-left: 2rem;
}

/* Figure styles */
.figure {
    margin: 2rem 0;
    text-align: center;
}

.figure img {
    max-width: 100%;
    height: auto;
    border-radius: 4px;
    box-shadow: 0 2px 8px rgba(0,0,0,0.1);
}

.figure-caption {
    margin-top: 0.5rem;
    font-size: 0.9rem;
    color: #666;
}

/* References */
.ref-item {
    margin-bottom: 0.75rem;
    padding-left: 2.5rem;
    text-indent: -2.5rem;
}

.ref-num {
    font-weight: 600;
}

pre code.bibtex {
    display: block;
    padding: 1rem;
    background-color: #f8f9fa;
    overflow-x: auto;
}

/* Footer styles */
.paper-footer {
    text-align: center;
    padding: 2rem 0;
    margin-top: 3rem;
    border-top: 1px solid #eee;
    color: #666;
}

/* Responsive design */
@media (max-width: 768px) {
    .paper-title {
        font-size: 2rem;
    }

    .paper-content {
        padding: 0 1rem;
    }

    .abstract {
        padding: 1.5rem;
    }
}
`
