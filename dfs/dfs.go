package dfs

import "fmt"

// frame is one level of the explicit DFS stack: vertex v and the position of
// the next neighbor of v to examine.
type frame struct {
	v    int
	next int
}

// DFS returns the pre-order visit sequence of the component containing start.
// Neighbors are explored in stored order; each vertex appears once.
//
// Errors:
//   - ErrGraphNil if a is nil.
//   - *RangeError if start is outside [0, n).
//   - a wrapped OnVisit error.
func (a *AdjacencyList) DFS(start int, opts ...Option) ([]int, error) {
	res, err := a.Walk(start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Walk performs the same traversal as DFS and also reports parent links
// and depths. Visited state lives only for the duration of the call.
func (a *AdjacencyList) Walk(start int, opts ...Option) (*Result, error) {
	// 1. Validate input
	if a == nil {
		return nil, ErrGraphNil
	}
	if err := a.check("DFS", start); err != nil {
		return nil, err
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Traverse
	res := newResult(len(a.adj))
	if err := a.walk(start, res, o); err != nil {
		return nil, err
	}

	return res, nil
}

// walk explores the component of root, appending to res.Order.
// Vertices with res.Depth >= 0 count as visited, so repeated calls on the
// same res skip earlier components.
func (a *AdjacencyList) walk(root int, res *Result, o Options) error {
	visit := func(v, parent, depth int) error {
		res.Depth[v] = depth
		res.Parent[v] = parent
		res.Order = append(res.Order, v)
		if o.OnVisit != nil {
			if err := o.OnVisit(v); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
			}
		}

		return nil
	}

	if err := visit(root, -1, 0); err != nil {
		return err
	}

	stack := []frame{{v: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbs := a.adj[top.v]
		if top.next >= len(nbs) {
			stack = stack[:len(stack)-1] // all neighbors explored: backtrack
			continue
		}
		u := nbs[top.next]
		top.next++

		if res.Depth[u] >= 0 {
			continue // already visited (covers self-loops and cycles)
		}
		depth := res.Depth[top.v] + 1
		if o.MaxDepth >= 0 && depth > o.MaxDepth {
			continue
		}
		if err := visit(u, top.v, depth); err != nil {
			return err
		}
		stack = append(stack, frame{v: u})
	}

	return nil
}
