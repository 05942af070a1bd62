package dfs

// Components partitions the vertices into connected components.
// Roots are tried in ascending index order; each component is listed in
// DFS pre-order from its smallest vertex. A nil or empty graph yields nil.
//
// Complexity: O(V+E)
func (a *AdjacencyList) Components() [][]int {
	if a.Size() == 0 {
		return nil
	}

	res := newResult(len(a.adj))
	var out [][]int
	for v := range a.adj {
		if res.Visited(v) {
			continue
		}
		from := len(res.Order)
		_ = a.walk(v, res, DefaultOptions()) // no hook: cannot fail
		comp := make([]int, len(res.Order)-from)
		copy(comp, res.Order[from:])
		out = append(out, comp)
	}

	return out
}
