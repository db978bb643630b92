package graph

import (
	"comptree/internal/shared/observability"
	"sort"
)

// InDegree counts incoming references for every node, keys and referenced
// names alike. Keys start at zero.
func InDegree(g UsageGraph) map[string]int {
	degree := make(map[string]int, len(g))
	for name := range g {
		degree[name] = 0
	}
	for _, refs := range g {
		for ref := range refs {
			degree[ref]++
		}
	}
	return degree
}

// Roots returns the names with in-degree zero, sorted. A fully cyclic graph
// has no roots.
func Roots(g UsageGraph) []string {
	var roots []string
	for name, d := range InDegree(g) {
		if d == 0 {
			roots = append(roots, name)
		}
	}
	sort.Strings(roots)
	observability.GraphRoots.Set(float64(len(roots)))
	return roots
}
