package walk

import "github.com/danwakefield/fnmatch"

// FilterSet is an ordered list of shell glob patterns. Patterns are matched
// against a bare entry name with fnmatch(3) semantics and no flags: '*' and '?'
// match any character, including '/', and matching is case sensitive.
type FilterSet []string

// Match reports whether any pattern in the set matches name.
func (f FilterSet) Match(name string) bool {
	for _, pattern := range f {
		if fnmatch.Match(pattern, name, 0) {
			return true
		}
	}
	return false
}

// Add appends pattern to the set.
func (f *FilterSet) Add(pattern string) {
	*f = append(*f, pattern)
}
