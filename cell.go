package batchpartition

// Gain bucket arena for one Fiduccia-Mattheyses bisection, per spec.md §9
// ("Gain bucket layout", "Ownership of cells"). All FM state for a single
// call to bisect lives here and is discarded when the call returns; nothing
// escapes into the next recursion level except the final side assignment.
//
// Layout: cells are a flat arena indexed 0..len(S)-1 by position in the
// sorted node list. Each side (A, B) has an array of bucket heads indexed
// by gain shifted into [0, 2*maxDeg]; each bucket is an intrusive doubly
// linked list through the cells' own prev/next fields. No cross-bisection
// aliasing exists, and the arena is never shared.

const (
	sideA = 0
	sideB = 1
)

type cell struct {
	node   int // original node index in P
	side   int // sideA or sideB
	gain   int
	locked bool
	prev   int // arena index of previous cell in its bucket list, -1 if head
	next   int // arena index of next cell in its bucket list, -1 if tail
}

// fmArena holds every FM cell for one subset S plus the gain buckets that
// index them.
type fmArena struct {
	cells   []cell
	nodeIdx map[int]int // node -> arena index

	heads   [2][]int // heads[side][shiftedGain] -> arena index of bucket head, -1 if empty
	maxGain [2]int   // cursor: highest gain value known to possibly be populated
	count   [2]int   // unlocked population per side
	maxDeg  int       // bounds valid gain range to [-maxDeg, maxDeg]
}

// newArena allocates an arena for the given sorted node list and initial
// side assignment, with gains computed by the caller (they depend on the
// subgraph degree, which the caller already had to compute to size the
// buckets).
func newArena(nodes []int, sides []int, gains []int, maxDeg int) *fmArena {
	n := len(nodes)
	a := &fmArena{
		cells:   make([]cell, n),
		nodeIdx: make(map[int]int, n),
		maxDeg:  maxDeg,
	}
	width := 2*maxDeg + 1
	if width < 1 {
		width = 1
	}
	a.heads[sideA] = make([]int, width)
	a.heads[sideB] = make([]int, width)
	for i := range a.heads[sideA] {
		a.heads[sideA][i] = -1
		a.heads[sideB][i] = -1
	}
	a.maxGain[sideA] = -maxDeg
	a.maxGain[sideB] = -maxDeg

	for i, v := range nodes {
		a.cells[i] = cell{node: v, side: sides[i], gain: gains[i], locked: false, prev: -1, next: -1}
		a.nodeIdx[v] = i
		a.insert(i)
	}
	return a
}

func (a *fmArena) gainIndex(gain int) int {
	return gain + a.maxDeg
}

// insert places an unlocked cell into its side's bucket for its current
// gain value, at the head of that bucket's list.
func (a *fmArena) insert(idx int) {
	c := &a.cells[idx]
	gi := a.gainIndex(c.gain)
	head := a.heads[c.side][gi]
	c.prev = -1
	c.next = head
	if head != -1 {
		a.cells[head].prev = idx
	}
	a.heads[c.side][gi] = idx
	a.count[c.side]++
	if c.gain > a.maxGain[c.side] {
		a.maxGain[c.side] = c.gain
	}
}

// remove unlinks a cell from its current bucket. It does not change the
// cell's side or gain; callers that are relocating a cell must remove it
// before mutating gain/side and insert it again afterwards.
func (a *fmArena) remove(idx int) {
	c := &a.cells[idx]
	gi := a.gainIndex(c.gain)
	if c.prev != -1 {
		a.cells[c.prev].next = c.next
	} else {
		a.heads[c.side][gi] = c.next
	}
	if c.next != -1 {
		a.cells[c.next].prev = c.prev
	}
	c.prev, c.next = -1, -1
	a.count[c.side]--
}

// relocate removes a cell from its current bucket, applies delta to its
// gain, and reinserts it at the new gain bucket on the same side.
func (a *fmArena) relocate(idx, delta int) {
	a.remove(idx)
	a.cells[idx].gain += delta
	a.insert(idx)
}

// selectMax returns the arena index of the unlocked cell on the given side
// with maximum gain, breaking ties by smallest node index. Returns -1 if
// the side has no unlocked cells. The cursor only moves down as buckets
// empty, and is bumped back up by insert/relocate when a higher gain becomes
// populated; the tie-break scans every cell of the top non-empty bucket.
func (a *fmArena) selectMax(side int) int {
	if a.count[side] == 0 {
		return -1
	}
	for gi := a.gainIndex(a.maxGain[side]); gi >= 0; gi-- {
		head := a.heads[side][gi]
		if head == -1 {
			continue
		}
		best := head
		for n := a.cells[head].next; n != -1; n = a.cells[n].next {
			if a.cells[n].node < a.cells[best].node {
				best = n
			}
		}
		a.maxGain[side] = gi - a.maxDeg
		return best
	}
	return -1
}

// lock removes a cell from its bucket and marks it locked, decrementing its
// side's unlocked population. Callers flip the cell's side afterwards to
// record the move; lock only handles bucket bookkeeping.
func (a *fmArena) lock(idx int) {
	a.remove(idx)
	a.cells[idx].locked = true
}
