// Package matgen provides basic synthetic pruning-matrix generation
// wrappers for tests and examples, the graph-domain counterpart to the
// teacher's siggen package (which generates synthetic waveforms).
package matgen

import (
	"fmt"
	"math/rand"

	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
)

// Cycle produces the n-node cycle graph 0-1-2-...-(n-1)-0.
func Cycle(n int) (*bitmatrix.Matrix, error) {
	if n < 3 {
		return nil, fmt.Errorf("matgen: cycle requires at least 3 nodes, got %d", n)
	}
	m, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := m.SetEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Clique produces the complete graph on n nodes.
func Clique(n int) (*bitmatrix.Matrix, error) {
	m, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := m.SetEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Disconnected produces a graph that is the disjoint union of cliques of
// the given sizes, laid out in consecutive index ranges in the order
// given.
func Disconnected(sizes []int) (*bitmatrix.Matrix, error) {
	n := 0
	for _, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("matgen: clique size must be non-negative, got %d", s)
		}
		n += s
	}
	m, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}
	offset := 0
	for _, s := range sizes {
		for i := 0; i < s; i++ {
			for j := i + 1; j < s; j++ {
				if err := m.SetEdge(offset+i, offset+j); err != nil {
					return nil, err
				}
			}
		}
		offset += s
	}
	return m, nil
}

// Random produces an Erdos-Renyi G(n, p) graph using rng for edge
// decisions, useful for property-test generation and benchmark fixtures
// where a fixed seed keeps the fixture reproducible.
func Random(n int, p float64, rng *rand.Rand) (*bitmatrix.Matrix, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("matgen: p must be in [0,1], got %.3f", p)
	}
	m, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := m.SetEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// WithIsolates produces a graph on n nodes where only the nodes listed in
// connected participate in a single clique, leaving every other node
// isolated. Useful for exercising the isolated-node bookkeeping in
// Partition.
func WithIsolates(n int, connected []int) (*bitmatrix.Matrix, error) {
	m, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(connected); i++ {
		for j := i + 1; j < len(connected); j++ {
			if err := m.SetEdge(connected[i], connected[j]); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
