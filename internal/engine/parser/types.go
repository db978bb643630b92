package parser

import "sort"

// ComponentFile pairs a discovered source file with its derived component name.
type ComponentFile struct {
	Path string
	Name string
}

// UsageSet holds the component names referenced by one file.
type UsageSet map[string]struct{}

func NewUsageSet(names ...string) UsageSet {
	s := make(UsageSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s UsageSet) Add(name string) {
	s[name] = struct{}{}
}

func (s UsageSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexicographic order.
func (s UsageSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Without returns a copy of s minus every name in ignored.
func (s UsageSet) Without(ignored UsageSet) UsageSet {
	out := make(UsageSet, len(s))
	for name := range s {
		if ignored.Has(name) {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}

// ImportBinding is one capitalized name brought in by an import statement.
type ImportBinding struct {
	Name   string // Name checked against tag usages
	Module string // Module specifier, quotes stripped
}

func isCapitalized(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
