package expander

// candidate is a frontier entry. A cell may have several candidates in the
// frontier at once; the first one popped settles it and the rest are stale.
type candidate struct {
	index int     // cell address
	cost  float64 // cost-to-come, written to the field on settlement
	dist  float64 // cost + heuristic, used only for ordering
	seq   int     // push order, last tie-break
}

// frontier is a min-heap of candidates ordered by dist ascending, then by
// lower cost, then by push order, so extraction is reproducible.
// It implements container/heap.Interface.
type frontier []candidate

// Len returns the number of candidates in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by dist, breaking ties on cost and then seq.
func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

// Swap swaps two candidates in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push, x must be a candidate.
func (f *frontier) Push(x any) { *f = append(*f, x.(candidate)) }

// Pop removes and returns the last candidate; called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	c := old[n-1]
	*f = old[:n-1]

	return c
}
