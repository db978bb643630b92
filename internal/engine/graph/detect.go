package graph

// DetectCycles returns each usage cycle found by a depth-first walk, in walk
// order. Traversal is sorted so results are stable across runs.
func DetectCycles(g UsageGraph) [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	for _, name := range g.Names() {
		if !visited[name] {
			findCycles(g, name, visited, onStack, []string{}, &cycles)
		}
	}

	return cycles
}

func findCycles(g UsageGraph, curr string, visited, onStack map[string]bool, path []string, cycles *[][]string) {
	visited[curr] = true
	onStack[curr] = true
	path = append(path, curr)

	// Children is sorted, so the same graph always reports the same cycles.
	for _, next := range g.Children(curr) {
		if onStack[next] {
			cycleStart := -1
			for i, name := range path {
				if name == next {
					cycleStart = i
					break
				}
			}
			if cycleStart != -1 {
				cycle := make([]string, len(path)-cycleStart)
				copy(cycle, path[cycleStart:])
				*cycles = append(*cycles, cycle)
			}
		} else if !visited[next] {
			findCycles(g, next, visited, onStack, path, cycles)
		}
	}

	onStack[curr] = false
}
