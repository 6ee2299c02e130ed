package batchpartition

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
)

// moveRecord is one entry of a pass's move history: which arena cell moved,
// and the cumulative cut immediately after that move (spec.md §4.2 step 3).
type moveRecord struct {
	idx    int
	cumCut int
}

// bisect performs a Fiduccia-Mattheyses balanced 2-way min-cut bisection of
// subset s within P (spec.md §4.2). Returns (A, B) with A ∪ B = s,
// A ∩ B = ∅, ||A|-|B|| ≤ 1, each sorted ascending by node index. Pure
// function of (P, s): same initial-split rule, same tie-breaks throughout,
// so repeated calls on identical input are byte-identical.
func bisect(P *bitmatrix.Matrix, s []int) ([]int, []int) {
	nodes := append([]int(nil), s...)
	sort.Ints(nodes)
	n := len(nodes)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return []int{nodes[0]}, nil
	}

	pos := make(map[int]int, n)
	for i, v := range nodes {
		pos[v] = i
	}

	mask := P.SubsetMask(nodes)

	// deterministic initial split: first ceil(n/2) nodes (ascending) to A
	splitAt := (n + 1) / 2
	side := make([]int, n)
	for i := range nodes {
		if i < splitAt {
			side[i] = sideA
		} else {
			side[i] = sideB
		}
	}

	maxDeg := 0
	for _, v := range nodes {
		if d := P.DegreeIn(v, mask); d > maxDeg {
			maxDeg = d
		}
	}

	for runPass(P, nodes, pos, mask, side, maxDeg) {
	}

	var A, B []int
	for i, v := range nodes {
		if side[i] == sideA {
			A = append(A, v)
		} else {
			B = append(B, v)
		}
	}
	return A, B
}

// runPass executes one FM pass in place over side, rolling back to the best
// observed prefix of moves. Returns true if the pass strictly improved the
// cut (i.e. the bisection should keep iterating), false if the pass made no
// improvement (the bisection is done).
func runPass(P *bitmatrix.Matrix, nodes []int, pos map[int]int, mask *bitset.BitSet, side []int, maxDeg int) bool {
	n := len(nodes)

	initialSide := make([]int, n)
	copy(initialSide, side)

	gains := make([]int, n)
	for i, v := range nodes {
		external, internal := 0, 0
		for _, u := range P.NeighborsIn(v, mask) {
			if initialSide[pos[u]] == initialSide[i] {
				internal++
			} else {
				external++
			}
		}
		gains[i] = external - internal
	}

	arena := newArena(nodes, initialSide, gains, maxDeg)

	cut0 := 0
	for i, v := range nodes {
		for _, u := range P.NeighborsIn(v, mask) {
			j := pos[u]
			if j <= i {
				continue
			}
			if initialSide[i] != initialSide[j] {
				cut0++
			}
		}
	}

	history := make([]moveRecord, 0, n)
	cumCut := cut0
	bestCut := cut0
	bestK := 0

	// sizeA tracks |A| after the moves applied so far, so that bestK is only
	// ever updated at a balanced prefix (spec.md §8 invariant #4: every
	// bisection must keep ||A|-|B|| <= 1). The alternating from-side rule
	// only guarantees balance after an even number of moves in general; a
	// naive min-cumCut rollback can otherwise land on an odd, imbalanced k.
	sizeA := 0
	for _, sd := range initialSide {
		if sd == sideA {
			sizeA++
		}
	}

	for step := 0; step < n; step++ {
		from := sideA
		if arena.count[sideB] > arena.count[sideA] {
			from = sideB
		}
		idx := arena.selectMax(from)
		if idx == -1 {
			other := 1 - from
			idx = arena.selectMax(other)
			from = other
		}
		if idx == -1 {
			break
		}

		moveGain := arena.cells[idx].gain
		v := arena.cells[idx].node
		to := 1 - from

		for _, u := range P.NeighborsIn(v, mask) {
			j := pos[u]
			if arena.cells[j].locked {
				continue
			}
			delta := -2
			if arena.cells[j].side == from {
				delta = 2
			}
			arena.relocate(j, delta)
		}

		arena.lock(idx)
		arena.cells[idx].side = to

		cumCut -= moveGain
		if from == sideA {
			sizeA--
		} else {
			sizeA++
		}
		history = append(history, moveRecord{idx: idx, cumCut: cumCut})

		diff := 2*sizeA - n
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 && cumCut < bestCut {
			bestCut = cumCut
			bestK = step + 1
		}
	}

	copy(side, initialSide)
	for m := 0; m < bestK; m++ {
		rec := history[m]
		c := arena.cells[rec.idx]
		side[pos[c.node]] = c.side
	}

	return bestK > 0
}
