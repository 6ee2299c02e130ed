package batchpartition

import (
	"testing"

	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
	"github.com/matrix-profile-foundation/go-batchpartition/matgen"
)

func mustMatrix(t *testing.T, rows [][]bool) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

func TestBisectBalance(t *testing.T) {
	// Scenario S5: n=3, edges 0-1 and 0-2, B=2. Initial split A={0,1}, B={2}.
	P := mustMatrix(t, [][]bool{
		{false, true, true},
		{true, false, false},
		{true, false, false},
	})
	A, B := bisect(P, []int{0, 1, 2})
	if diff := len(A) - len(B); diff < -1 || diff > 1 {
		t.Fatalf("balance violated: |A|=%d |B|=%d", len(A), len(B))
	}
	if len(A)+len(B) != 3 {
		t.Fatalf("coverage violated: got %d total nodes", len(A)+len(B))
	}
	cut := countCut(P, A, B)
	if cut != 1 {
		t.Errorf("cut = %d, want 1 (optimal for this triangle-minus-one-edge graph)", cut)
	}
}

func TestBisectFourCycleSplitsAlongOppositeEdges(t *testing.T) {
	// Scenario S2: 4-cycle 0-1-2-3-0. A balanced bisection should cut exactly
	// 2 of the 4 edges (the minimum possible for a balanced split of a cycle).
	m, err := matgen.Cycle(4)
	if err != nil {
		t.Fatalf("matgen.Cycle: %v", err)
	}
	A, B := bisect(m, []int{0, 1, 2, 3})
	if len(A) != 2 || len(B) != 2 {
		t.Fatalf("expected balanced 2/2 split, got |A|=%d |B|=%d", len(A), len(B))
	}
	if cut := countCut(m, A, B); cut != 2 {
		t.Errorf("cut = %d, want 2 (minimum balanced cut of a 4-cycle)", cut)
	}
}

func TestBisectSingletonAndEmpty(t *testing.T) {
	m, err := matgen.Clique(1)
	if err != nil {
		t.Fatalf("matgen.Clique(1): %v", err)
	}
	A, B := bisect(m, []int{0})
	if len(A) != 1 || len(B) != 0 {
		t.Fatalf("singleton bisect: got A=%v B=%v", A, B)
	}

	A, B = bisect(m, nil)
	if len(A) != 0 || len(B) != 0 {
		t.Fatalf("empty bisect: got A=%v B=%v", A, B)
	}
}

func TestBisectDeterministic(t *testing.T) {
	m, err := matgen.Clique(8)
	if err != nil {
		t.Fatalf("matgen.Clique(8): %v", err)
	}
	nodes := []int{0, 1, 2, 3, 4, 5, 6, 7}
	A1, B1 := bisect(m, nodes)
	A2, B2 := bisect(m, nodes)
	if !equalIntSlices(A1, A2) || !equalIntSlices(B1, B2) {
		t.Fatalf("bisect is not deterministic: (%v,%v) vs (%v,%v)", A1, B1, A2, B2)
	}
}

func TestBisectCompleteGraphBalances(t *testing.T) {
	// Scenario S6: K8. Top-level bisection must split 4/4 with cut 16 (4*4).
	m, err := matgen.Clique(8)
	if err != nil {
		t.Fatalf("matgen.Clique(8): %v", err)
	}
	A, B := bisect(m, []int{0, 1, 2, 3, 4, 5, 6, 7})
	if len(A) != 4 || len(B) != 4 {
		t.Fatalf("expected 4/4 split of K8, got |A|=%d |B|=%d", len(A), len(B))
	}
	if cut := countCut(m, A, B); cut != 16 {
		t.Errorf("cut = %d, want 16 (every pair across a 4/4 split of K8)", cut)
	}
}

func TestBisectNeverWorsensInitialSplit(t *testing.T) {
	m, err := matgen.Cycle(10)
	if err != nil {
		t.Fatalf("matgen.Cycle(10): %v", err)
	}
	nodes := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	splitAt := (len(nodes) + 1) / 2
	initialA := nodes[:splitAt]
	initialB := nodes[splitAt:]
	initialCut := countCut(m, initialA, initialB)

	A, B := bisect(m, nodes)
	finalCut := countCut(m, A, B)
	if finalCut > initialCut {
		t.Errorf("final cut %d worse than initial balanced-split cut %d", finalCut, initialCut)
	}
}

func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
