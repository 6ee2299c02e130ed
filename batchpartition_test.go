package batchpartition

import (
	"fmt"
	"testing"

	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
	"github.com/matrix-profile-foundation/go-batchpartition/matgen"
)

// Example demonstrates partitioning the complete graph K8 into four
// cache-sized batches of two nodes each (spec.md scenario S6), following
// the teacher's documentation-as-test style (example_test.go).
func Example() {
	P, err := matgen.Clique(8)
	if err != nil {
		panic(err)
	}

	r, err := Partition(P, 8, 4, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("batches: %d\n", len(nonEmptyBatches(r.Batches)))
	fmt.Printf("isolated: %v\n", r.Isolated)

	// Output:
	// batches: 4
	// isolated: []
}

func nonEmptyBatches(batches [][]int) [][]int {
	var out [][]int
	for _, b := range batches {
		if len(b) > 0 {
			out = append(out, b)
		}
	}
	return out
}

func totalCovered(r *Result) int {
	n := len(r.Isolated)
	for _, b := range r.Batches {
		n += len(b)
	}
	return n
}

// TestPartitionTrivial is scenario S1: n=2, single edge, B=4, target 1.
func TestPartitionTrivial(t *testing.T) {
	m := mustMatrix(t, [][]bool{{false, true}, {true, false}})
	r, err := Partition(m, 2, 4, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	nb := nonEmptyBatches(r.Batches)
	if len(nb) != 1 || len(nb[0]) != 2 {
		t.Fatalf("expected one batch of size 2, got %v", nb)
	}
	if len(r.Isolated) != 0 {
		t.Fatalf("expected no isolated nodes, got %v", r.Isolated)
	}
}

// TestPartitionForcedSplit is scenario S2: 4-cycle, B=2, target 4 -> four singletons.
func TestPartitionForcedSplit(t *testing.T) {
	m, err := matgen.Cycle(4)
	if err != nil {
		t.Fatalf("matgen.Cycle: %v", err)
	}
	var stats []LevelStat
	r, err := Partition(m, 4, 2, &Options{DiagnosticSink: func(s LevelStat) { stats = append(stats, s) }})
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	nb := nonEmptyBatches(r.Batches)
	if len(nb) != 4 {
		t.Fatalf("expected 4 batches, got %d: %v", len(nb), nb)
	}
	for _, b := range nb {
		if len(b) != 1 {
			t.Errorf("expected all singleton batches, got %v", b)
		}
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 diagnostic levels, got %d", len(stats))
	}
	totalCut := 0
	for _, s := range stats {
		totalCut += s.CutTotal
	}
	if totalCut != 4 {
		t.Errorf("total cut across levels = %d, want 4", totalCut)
	}
}

// TestPartitionDisconnected is scenario S3: two triangles, B=3, target 4.
func TestPartitionDisconnected(t *testing.T) {
	m, err := matgen.Disconnected([]int{3, 3})
	if err != nil {
		t.Fatalf("matgen.Disconnected: %v", err)
	}
	r, err := Partition(m, 6, 3, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	nb := nonEmptyBatches(r.Batches)
	if len(nb) != 4 {
		t.Fatalf("expected 4 batches, got %d: %v", len(nb), nb)
	}
}

// TestPartitionIsolates is scenario S4: n=5, only edge (0,1), B=10, target 1.
func TestPartitionIsolates(t *testing.T) {
	m, err := matgen.WithIsolates(5, []int{0, 1})
	if err != nil {
		t.Fatalf("matgen.WithIsolates: %v", err)
	}
	r, err := Partition(m, 5, 10, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	nb := nonEmptyBatches(r.Batches)
	if len(nb) != 1 || len(nb[0]) != 2 {
		t.Fatalf("expected one batch {0,1}, got %v", nb)
	}
	wantIsolated := map[int]bool{2: true, 3: true, 4: true}
	if len(r.Isolated) != 3 {
		t.Fatalf("expected 3 isolated nodes, got %v", r.Isolated)
	}
	for _, v := range r.Isolated {
		if !wantIsolated[v] {
			t.Errorf("unexpected isolated node %d", v)
		}
	}
}

// TestPartitionRecursionTarget is scenario S6: K8, B=4, target 4.
func TestPartitionRecursionTarget(t *testing.T) {
	m, err := matgen.Clique(8)
	if err != nil {
		t.Fatalf("matgen.Clique(8): %v", err)
	}
	r, err := Partition(m, 8, 4, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	nb := nonEmptyBatches(r.Batches)
	if len(nb) != 4 {
		t.Fatalf("expected 4 batches, got %d: %v", len(nb), nb)
	}
	for _, b := range nb {
		if len(b) != 2 {
			t.Errorf("expected all batches of size 2, got %v", b)
		}
	}
}

func TestPartitionAllIsolated(t *testing.T) {
	m, err := bitmatrix.New(4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r, err := Partition(m, 4, 2, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(nonEmptyBatches(r.Batches)) != 0 {
		t.Fatalf("expected no batches, got %v", r.Batches)
	}
	if len(r.Isolated) != 4 {
		t.Fatalf("expected all 4 nodes isolated, got %v", r.Isolated)
	}
}

func TestPartitionRejectsInvalidInput(t *testing.T) {
	m, err := matgen.Clique(4)
	if err != nil {
		t.Fatalf("matgen.Clique: %v", err)
	}
	if _, err := Partition(m, 4, 1, nil); err == nil {
		t.Error("expected error for B < 2")
	}
	if _, err := Partition(m, 5, 2, nil); err == nil {
		t.Error("expected error for n mismatching P.N()")
	}
	if _, err := Partition(nil, 4, 2, nil); err == nil {
		t.Error("expected error for nil P")
	}
}

func TestPartitionCoversEveryNode(t *testing.T) {
	m, err := matgen.Disconnected([]int{5, 7, 3})
	if err != nil {
		t.Fatalf("matgen.Disconnected: %v", err)
	}
	r, err := Partition(m, 15, 4, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if got := totalCovered(r); got != 15 {
		t.Fatalf("covered %d nodes, want 15", got)
	}
	seen := make(map[int]bool, 15)
	for _, b := range r.Batches {
		for _, v := range b {
			if seen[v] {
				t.Fatalf("node %d appears in more than one batch", v)
			}
			seen[v] = true
		}
	}
	for _, v := range r.Isolated {
		if seen[v] {
			t.Fatalf("node %d is both batched and isolated", v)
		}
		seen[v] = true
	}
}

func TestResultBatchOf(t *testing.T) {
	m, err := matgen.Disconnected([]int{3, 3})
	if err != nil {
		t.Fatalf("matgen.Disconnected: %v", err)
	}
	r, err := Partition(m, 6, 3, nil)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	for _, b := range r.Batches {
		for _, v := range b {
			idx, ok := r.BatchOf(v)
			if !ok {
				t.Fatalf("BatchOf(%d) not found", v)
			}
			if !containsInt(r.Batches[idx], v) {
				t.Fatalf("BatchOf(%d) = %d, but batch %d does not contain %d", v, idx, idx, v)
			}
		}
	}
	if _, ok := r.BatchOf(999); ok {
		t.Error("expected BatchOf to report false for a node never seen")
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
