package latex

import "sort"

// Citation is a key and the number it was assigned.
type Citation struct {
	Key    string
	Number int
}

// Registry numbers citation keys in first-seen order starting at 1.
// A registry belongs to exactly one conversion; start a new one per document
// so numbering restarts. It is not safe for concurrent use.
type Registry struct {
	numbers map[string]int
	counter int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{numbers: make(map[string]int)}
}

// Number returns the number for key, assigning the next one if key is new.
func (r *Registry) Number(key string) int {
	if n, ok := r.numbers[key]; ok {
		return n
	}
	r.counter++
	r.numbers[key] = r.counter
	return r.counter
}

// Lookup reports the number of key without assigning one.
func (r *Registry) Lookup(key string) (int, bool) {
	if r == nil {
		return 0, false
	}
	n, ok := r.numbers[key]
	return n, ok
}

// Len returns how many distinct keys have been cited.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.numbers)
}

// Entries lists the cited keys ordered by number.
func (r *Registry) Entries() []Citation {
	if r == nil {
		return nil
	}
	out := make([]Citation, 0, len(r.numbers))
	for k, n := range r.numbers {
		out = append(out, Citation{Key: k, Number: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Reset forgets every key so numbering starts again at 1.
func (r *Registry) Reset() {
	r.numbers = make(map[string]int)
	r.counter = 0
}
