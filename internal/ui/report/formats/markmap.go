package formats

import (
	"comptree/internal/engine/graph"
	"fmt"
	"sort"
	"strings"
)

const (
	defaultMarkmapTitle       = "Component Tree"
	defaultMarkmapFreezeLevel = 4
)

type MarkmapTreeData struct {
	Graph graph.UsageGraph
	Roots []string
}

type MarkmapOptions struct {
	Title            string
	ColorFreezeLevel int
}

// DefaultMarkmapOptions returns the front matter used by componentsTree.mm.md.
func DefaultMarkmapOptions() MarkmapOptions {
	return MarkmapOptions{Title: defaultMarkmapTitle, ColorFreezeLevel: defaultMarkmapFreezeLevel}
}

// MarkmapGenerator renders a usage graph as a markmap outline: one level-2
// section per root holding a depth-first list of its descendants.
type MarkmapGenerator struct{}

func NewMarkmapGenerator() *MarkmapGenerator {
	return &MarkmapGenerator{}
}

func (m *MarkmapGenerator) Generate(data MarkmapTreeData, opts MarkmapOptions) (string, error) {
	if opts.ColorFreezeLevel < 0 {
		return "", fmt.Errorf("color freeze level must be >= 0, got %d", opts.ColorFreezeLevel)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + nonEmpty(opts.Title, defaultMarkmapTitle) + "\n")
	b.WriteString("markmap:\n")
	b.WriteString(fmt.Sprintf("  colorFreezeLevel: %d\n", opts.ColorFreezeLevel))
	b.WriteString("---\n\n")

	roots := append([]string(nil), data.Roots...)
	sort.Strings(roots)
	for _, root := range roots {
		b.WriteString("## " + root + "\n\n")
		m.writeNode(&b, data.Graph, root, 0, map[string]bool{})
		b.WriteString("\n")
	}

	return b.String(), nil
}

// writeNode prints name and, unless name is already on the path from the
// root, its sorted children. Each child gets its own copy of the path set so
// sibling subtrees never suppress each other.
func (m *MarkmapGenerator) writeNode(b *strings.Builder, g graph.UsageGraph, name string, depth int, path map[string]bool) {
	b.WriteString(strings.Repeat("  ", depth) + "- " + name + "\n")
	if path[name] {
		return
	}

	next := make(map[string]bool, len(path)+1)
	for k := range path {
		next[k] = true
	}
	next[name] = true

	for _, child := range g.Children(name) {
		m.writeNode(b, g, child, depth+1, next)
	}
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
