package gridpath

// state is a search node: a cell plus the heading used to enter it.
type state struct {
	cell Cell
	dir  Direction
}

// stateItem is a frontier entry. priority is cost plus the heuristic
// estimate; seq breaks ties in insertion order so runs are deterministic.
type stateItem struct {
	st       state
	cost     int
	priority int
	seq      int
}

// stateHeap is a min-heap of *stateItem ordered by (priority, seq).
// Improved costs are pushed as new entries; outdated ones are skipped on pop.
type stateHeap []*stateItem

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x interface{}) { *h = append(*h, x.(*stateItem)) }

func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
