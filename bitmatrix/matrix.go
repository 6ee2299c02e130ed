// Package bitmatrix presents a read-only accessor over a symmetric boolean
// adjacency matrix, backed by a row of bitsets per node. It is the leaf
// dependency of the partitioner and bisector: both only ever ask it
// "has_edge(u,v)" and "which neighbors of v lie in this subset".
package bitmatrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is a symmetric boolean n x n adjacency matrix with no self-edges.
// It is built once and borrowed immutably for the lifetime of a
// partitioning run.
type Matrix struct {
	n    int
	rows []*bitset.BitSet
}

// New allocates an empty n x n matrix with no edges set.
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("bitmatrix: n must be non-negative, got %d", n)
	}
	m := &Matrix{n: n, rows: make([]*bitset.BitSet, n)}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(n))
	}
	return m, nil
}

// FromRows builds a Matrix from a dense row-major boolean matrix, validating
// that it is square, symmetric, and has no self-edges. This is the
// precondition check spec.md §7 requires of any caller-supplied P.
func FromRows(rows [][]bool) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("bitmatrix: row %d has length %d, want %d (matrix must be square)", i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !rows[i][j] {
				continue
			}
			if i == j {
				return nil, fmt.Errorf("bitmatrix: self-edge at index %d is not allowed", i)
			}
			if !rows[j][i] {
				return nil, fmt.Errorf("bitmatrix: matrix is not symmetric at (%d,%d)", i, j)
			}
			m.rows[i].Set(uint(j))
		}
	}
	return m, nil
}

// SetEdge marks an undirected edge between u and v. Both endpoints must be
// distinct, in-range node indices.
func (m *Matrix) SetEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("bitmatrix: self-edge at index %d is not allowed", u)
	}
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return fmt.Errorf("bitmatrix: edge (%d,%d) out of range for n=%d", u, v, m.n)
	}
	m.rows[u].Set(uint(v))
	m.rows[v].Set(uint(u))
	return nil
}

// N returns the node count of the matrix.
func (m *Matrix) N() int {
	return m.n
}

// HasEdge reports whether u and v are adjacent. Returns false for u == v
// (self-edges are never present by convention) and for out-of-range
// indices.
func (m *Matrix) HasEdge(u, v int) bool {
	if u < 0 || u >= m.n || v < 0 || v >= m.n || u == v {
		return false
	}
	return m.rows[u].Test(uint(v))
}

// Degree returns the number of edges incident to v.
func (m *Matrix) Degree(v int) int {
	if v < 0 || v >= m.n {
		return 0
	}
	return int(m.rows[v].Count())
}

// IsIsolated reports whether v has no incident edge.
func (m *Matrix) IsIsolated(v int) bool {
	return m.Degree(v) == 0
}

// SubsetMask builds a membership bitset over the node universe for the
// given subset of nodes, suitable for repeated use with NeighborsIn across
// one bisection (spec.md §4.3: "precomputed once per bisection").
func (m *Matrix) SubsetMask(nodes []int) *bitset.BitSet {
	mask := bitset.New(uint(m.n))
	for _, v := range nodes {
		mask.Set(uint(v))
	}
	return mask
}

// NeighborsIn returns the nodes adjacent to v whose membership bit is set
// in mask, i.e. the neighbors of v restricted to a subset S. Runs in
// O(deg(v)) via a single bitset intersection and scan.
func (m *Matrix) NeighborsIn(v int, mask *bitset.BitSet) []int {
	if v < 0 || v >= m.n {
		return nil
	}
	inter := m.rows[v].Intersection(mask)
	out := make([]int, 0, inter.Count())
	for i, ok := inter.NextSet(0); ok; i, ok = inter.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// DegreeIn returns deg_S(v): the number of neighbors of v within the subset
// described by mask.
func (m *Matrix) DegreeIn(v int, mask *bitset.BitSet) int {
	if v < 0 || v >= m.n {
		return 0
	}
	return int(m.rows[v].IntersectionCardinality(mask))
}
