package batchpartition

import (
	"fmt"

	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
)

// Partition computes a disjoint partition of P's n nodes into batches, per
// spec.md §4.1. It starts from the single batch of all non-isolated nodes
// and repeatedly bisects every current-level batch with the FM bisector
// until the batch count reaches target = ceil(2n/B), splitting an entire
// level before moving to the next. Isolated nodes are excluded from
// partitioning and returned separately.
func Partition(P *bitmatrix.Matrix, n, B int, opts *Options) (*Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("batchpartition: n must be non-negative, got %d", n)
	}
	if B < 2 {
		return nil, fmt.Errorf("batchpartition: B must be at least 2, got %d", B)
	}
	if P == nil {
		return nil, fmt.Errorf("batchpartition: P must not be nil")
	}
	if P.N() != n {
		return nil, fmt.Errorf("batchpartition: matrix has %d nodes, want %d", P.N(), n)
	}

	var isolated, s0 []int
	for v := 0; v < n; v++ {
		if P.IsIsolated(v) {
			isolated = append(isolated, v)
		} else {
			s0 = append(s0, v)
		}
	}

	if len(s0) == 0 {
		return &Result{Isolated: isolated}, nil
	}

	batches := [][]int{s0}
	target := ceilDiv(2*n, B)

	level := 0
	for len(batches) < target {
		next := make([][]int, 0, len(batches)*2)
		cutTotal := 0
		for _, batch := range batches {
			a, b := bisect(P, batch)
			cutTotal += countCut(P, a, b)
			next = append(next, a, b)
		}
		batches = next
		level++

		if opts != nil && opts.DiagnosticSink != nil {
			opts.DiagnosticSink(computeLevelStat(level, cutTotal, batches))
		}
	}

	return &Result{Batches: batches, Isolated: isolated}, nil
}

// countCut returns the number of P-edges with one endpoint in a and the
// other in b.
func countCut(P *bitmatrix.Matrix, a, b []int) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	maskB := P.SubsetMask(b)
	cut := 0
	for _, v := range a {
		cut += P.DegreeIn(v, maskB)
	}
	return cut
}
