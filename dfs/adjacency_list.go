package dfs

// AdjacencyList is an undirected graph over vertices 0..n-1.
// adj[v] holds v's neighbors in the order edges were added.
//
// An AdjacencyList is not safe for concurrent mutation.
type AdjacencyList struct {
	adj [][]int
}

// NewAdjacencyList creates a graph with n isolated vertices.
// Returns ErrNegativeSize if n < 0.
func NewAdjacencyList(n int) (*AdjacencyList, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &AdjacencyList{adj: make([][]int, n)}, nil
}

// Size returns the number of vertices.
func (a *AdjacencyList) Size() int {
	if a == nil {
		return 0
	}

	return len(a.adj)
}

// AddEdge appends dest to src's list and src to dest's list.
// src == dest is allowed: v then lists itself twice.
// Either index outside [0, n) yields a *RangeError and no mutation.
func (a *AdjacencyList) AddEdge(src, dest int) error {
	if a == nil {
		return ErrGraphNil
	}
	if err := a.check("AddEdge", src); err != nil {
		return err
	}
	if err := a.check("AddEdge", dest); err != nil {
		return err
	}

	a.adj[src] = append(a.adj[src], dest)
	a.adj[dest] = append(a.adj[dest], src)

	return nil
}

// Neighbors returns a copy of v's neighbor list in insertion order.
func (a *AdjacencyList) Neighbors(v int) ([]int, error) {
	if a == nil {
		return nil, ErrGraphNil
	}
	if err := a.check("Neighbors", v); err != nil {
		return nil, err
	}
	out := make([]int, len(a.adj[v]))
	copy(out, a.adj[v])

	return out, nil
}

// check validates v against [0, n).
func (a *AdjacencyList) check(op string, v int) error {
	if v < 0 || v >= len(a.adj) {
		return &RangeError{Op: op, Index: v, Size: len(a.adj)}
	}

	return nil
}
