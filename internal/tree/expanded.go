package tree

// ExpandedPaths is the set of absolute paths the user keeps open. It is
// the source of truth for which directories get rescanned; the cached
// flag on Entry is derived from it on every sync.
type ExpandedPaths map[string]struct{}

// NewExpandedPaths returns an empty set.
func NewExpandedPaths() ExpandedPaths {
	return make(ExpandedPaths)
}

// Contains reports membership.
func (p ExpandedPaths) Contains(path string) bool {
	_, ok := p[path]
	return ok
}

// Add marks a path expanded.
func (p ExpandedPaths) Add(path string) {
	p[path] = struct{}{}
}

// Remove marks a path collapsed.
func (p ExpandedPaths) Remove(path string) {
	delete(p, path)
}

// Toggle flips a path between expanded and collapsed.
func (p ExpandedPaths) Toggle(path string) {
	if p.Contains(path) {
		p.Remove(path)
	} else {
		p.Add(path)
	}
}

// Extend adds every path in other.
func (p ExpandedPaths) Extend(other []string) {
	for _, path := range other {
		p.Add(path)
	}
}

// List returns the members in no particular order.
func (p ExpandedPaths) List() []string {
	out := make([]string, 0, len(p))
	for path := range p {
		out = append(out, path)
	}
	return out
}
