package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// mainTexCandidates are tried in order before falling back to any *.tex file.
var mainTexCandidates = []string{"main.tex", "paper.tex", "document.tex"}

// FindMainTex returns the main LaTeX file in dir, or ErrMissingInput.
func FindMainTex(dir string) (string, error) {
	for _, name := range mainTexCandidates {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.tex"))
	if err != nil {
		return "", fmt.Errorf("glob tex files: %w", err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", fmt.Errorf("no .tex file in %s: %w", dir, ErrMissingInput)
	}
	return matches[0], nil
}

// replaceDir removes dst and copies the tree at src into its place.
// It returns false when src does not exist.
func replaceDir(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return false, nil
	}
	if err := os.RemoveAll(dst); err != nil {
		return false, fmt.Errorf("remove %s: %w", dst, err)
	}
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return false, fmt.Errorf("copy %s: %w", src, err)
	}
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
