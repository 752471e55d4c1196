package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/hyperifyio/texsite/internal/convert"
	"github.com/hyperifyio/texsite/internal/latex"
)

// manifestCitation records one numbered citation of the build.
type manifestCitation struct {
	Number    int    `json:"number"`
	Key       string `json:"key"`
	InCatalog bool   `json:"in_catalog"`
}

// manifestMeta captures the inputs and outputs of a build.
type manifestMeta struct {
	Version      string    `json:"version"`
	Commit       string    `json:"commit"`
	Source       string    `json:"source"`
	SourceSHA256 string    `json:"source_sha256"`
	OutputSHA256 string    `json:"output_sha256"`
	MathRenderer string    `json:"math_renderer"`
	Theme        string    `json:"theme"`
	Sections     int       `json:"sections"`
	Figures      int       `json:"figures"`
	Equations    int       `json:"equations"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the given bytes.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

func buildManifestCitations(cites []latex.Citation, catalog latex.Catalog) []manifestCitation {
	out := make([]manifestCitation, 0, len(cites))
	for _, c := range cites {
		_, ok := catalog.Lookup(c.Key)
		out = append(out, manifestCitation{Number: c.Number, Key: c.Key, InCatalog: ok})
	}
	return out
}

func newManifestMeta(source string, sourceBytes []byte, res convert.Result, mathRenderer, theme string, now time.Time) manifestMeta {
	return manifestMeta{
		Version:      BuildVersion,
		Commit:       BuildCommit,
		Source:       source,
		SourceSHA256: computeSHA256Hex(sourceBytes),
		OutputSHA256: computeSHA256Hex([]byte(res.HTML)),
		MathRenderer: mathRenderer,
		Theme:        theme,
		Sections:     len(res.Document.Sections),
		Figures:      len(res.Document.Figures),
		Equations:    len(res.Document.Equations),
		GeneratedAt:  now.UTC(),
	}
}

// marshalManifestJSON encodes the machine-readable sidecar manifest.
func marshalManifestJSON(meta manifestMeta, cites []manifestCitation) ([]byte, error) {
	payload := struct {
		Meta      manifestMeta       `json:"meta"`
		Citations []manifestCitation `json:"citations"`
	}{Meta: meta, Citations: cites}
	return json.MarshalIndent(payload, "", "  ")
}

// deriveManifestSidecarPath returns a sidecar JSON path next to the output page.
func deriveManifestSidecarPath(outputPath string) string {
	return outputPath + ".manifest.json"
}
