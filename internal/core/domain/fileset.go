package domain

import "slices"

// FileSet is a listing of files relative to a project root, in forward-slash form.
type FileSet map[string]struct{}

// Add inserts path into the set.
func (s FileSet) Add(path string) {
	s[path] = struct{}{}
}

// Has reports whether path is in the set.
func (s FileSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the set's paths in lexical order.
func (s FileSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
