package theme

import "strings"

// Type represents the supported site themes
type Type string

const (
	// Modern uses a gradient header on a sans-serif page
	Modern Type = "modern"
	// Academic uses a serif body and a plain header
	Academic Type = "academic"
	// Minimal is black on white with light borders
	Minimal Type = "minimal"
	// Default is the theme used when none is configured
	Default = Modern
)

// Profile is a theme's name and the CSS written to assets/theme.css
type Profile struct {
	Type        Type
	Name        string
	Description string
	CSS         string
}

// GetProfile returns the profile for the given theme name
func GetProfile(name string) Profile {
	switch Type(normalizeType(name)) {
	case Academic:
		return academicProfile()
	case Minimal:
		return minimalProfile()
	default:
		return modernProfile()
	}
}

// normalizeType converts string input to canonical Type value
func normalizeType(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "modern", "default", "gradient":
		return string(Modern)
	case "academic", "paper", "serif", "classic":
		return string(Academic)
	case "minimal", "plain", "simple", "mono":
		return string(Minimal)
	default:
		if strings.Contains(v, "academic") || strings.Contains(v, "serif") {
			return string(Academic)
		}
		if strings.Contains(v, "minimal") || strings.Contains(v, "plain") {
			return string(Minimal)
		}
		return string(Default)
	}
}

func modernProfile() Profile {
	return Profile{
		Type:        Modern,
		Name:        "Modern",
		Description: "Gradient header with white title text",
		CSS: `
/* Modern theme styles */
:root {
    --primary-color: #007bff;
    --secondary-color: #6c757d;
    --accent-color: #28a745;
    --background-color: #ffffff;
    --text-color: #333333;
    --border-color: #e9ecef;
}

.paper-header {
    background: linear-gradient(135deg, var(--primary-color), var(--accent-color));
    color: white;
    padding: 3rem 0;
}

.paper-title {
    color: white;
    text-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.paper-authors,
.paper-affiliations {
    color: rgba(255,255,255,0.9);
}

.paper-authors a {
    color: white;
}
`,
	}
}

func academicProfile() Profile {
	return Profile{
		Type:        Academic,
		Name:        "Academic",
		Description: "Serif typesetting close to a printed paper",
		CSS: `
/* Academic theme styles */
:root {
    --primary-color: #2c3e50;
    --secondary-color: #34495e;
    --accent-color: #3498db;
    --background-color: #ffffff;
    --text-color: #2c3e50;
    --border-color: #bdc3c7;
}

body {
    font-family: 'Times New Roman', serif;
}

.paper-header {
    background-color: var(--background-color);
    color: var(--text-color);
}

.paper-title {
    color: var(--primary-color);
    font-weight: 400;
}

.content-section h2 {
    border-bottom-color: var(--border-color);
}
`,
	}
}

func minimalProfile() Profile {
	return Profile{
		Type:        Minimal,
		Name:        "Minimal",
		Description: "Black on white without decoration",
		CSS: `
/* Minimal theme styles */
:root {
    --primary-color: #000000;
    --secondary-color: #666666;
    --accent-color: #999999;
    --background-color: #ffffff;
    --text-color: #000000;
    --border-color: #cccccc;
}

.paper-header {
    background-color: var(--background-color);
    color: var(--text-color);
    border-bottom: 2px solid var(--border-color);
}

.paper-title {
    color: var(--primary-color);
    font-weight: 300;
}

.btn-primary,
.btn-secondary {
    background-color: var(--primary-color);
}
`,
	}
}
