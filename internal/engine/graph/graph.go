package graph

import (
	"comptree/internal/engine/parser"
	"comptree/internal/shared/observability"
	"comptree/internal/shared/util"
)

// UsageGraph maps a defined component name to the names it references.
// Referenced names may have no entry of their own unless the graph was built
// project-only.
type UsageGraph map[string]parser.UsageSet

// Build aggregates per-component usage sets into a graph. With projectOnly
// set, references to names that are not keys of usages are dropped.
// Self-references are kept.
func Build(usages map[string]parser.UsageSet, projectOnly bool) UsageGraph {
	g := make(UsageGraph, len(usages))
	for name, refs := range usages {
		kept := make(parser.UsageSet, len(refs))
		for ref := range refs {
			if projectOnly {
				if _, defined := usages[ref]; !defined {
					continue
				}
			}
			kept.Add(ref)
		}
		g[name] = kept
	}

	observability.GraphNodes.Set(float64(len(g)))
	observability.GraphEdges.Set(float64(g.EdgeCount()))
	return g
}

// Names returns the defined component names, sorted.
func (g UsageGraph) Names() []string {
	return util.SortedStringKeys(g)
}

// Children returns the sorted references of name, or nil when name has no
// entry.
func (g UsageGraph) Children(name string) []string {
	refs, ok := g[name]
	if !ok {
		return nil
	}
	return refs.Sorted()
}

func (g UsageGraph) EdgeCount() int {
	count := 0
	for _, refs := range g {
		count += len(refs)
	}
	return count
}

// Unresolved returns referenced names that have no entry, sorted.
func (g UsageGraph) Unresolved() []string {
	missing := make(map[string]struct{})
	for _, refs := range g {
		for ref := range refs {
			if _, ok := g[ref]; !ok {
				missing[ref] = struct{}{}
			}
		}
	}
	return util.SortedStringKeys(missing)
}
