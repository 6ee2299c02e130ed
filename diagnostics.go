package batchpartition

import (
	"container/heap"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// LevelStat is the diagnostic tuple spec.md §6 allows an optional sink to
// observe once per recursion level: (level, batch_count, cut_total,
// min_batch_size, max_batch_size). MeanBatchSize is an addition computed
// from the same non-empty batch sizes as the min and max, following the
// teacher's util package's habit of leaning on gonum/stat for these
// summaries.
type LevelStat struct {
	Level         int
	BatchCount    int
	CutTotal      int
	MinBatchSize  int
	MaxBatchSize  int
	MeanBatchSize float64
}

// computeLevelStat builds the diagnostic tuple for one completed level.
// Empty retained batches (spec.md §9) are excluded from the size summary;
// they still count towards BatchCount.
func computeLevelStat(level, cutTotal int, batches [][]int) LevelStat {
	ls := LevelStat{Level: level, BatchCount: len(batches), CutTotal: cutTotal}

	sizes := make([]float64, 0, len(batches))
	for _, b := range batches {
		if len(b) == 0 {
			continue
		}
		sizes = append(sizes, float64(len(b)))
	}
	if len(sizes) == 0 {
		return ls
	}

	ls.MinBatchSize = int(floats.Min(sizes))
	ls.MaxBatchSize = int(floats.Max(sizes))
	ls.MeanBatchSize = gstat.Mean(sizes, nil)
	return ls
}

// levelHeap is a min-heap of LevelStat ordered by CutTotal, used by
// TopCutLevels to keep a bounded top-k the same way the teacher's
// matrixprofile.go uses container/heap to track the k lowest matrix
// profile values during motif discovery: push while under capacity, then
// pop-and-push whenever a larger candidate arrives.
type levelHeap []LevelStat

func (h levelHeap) Len() int            { return len(h) }
func (h levelHeap) Less(i, j int) bool  { return h[i].CutTotal < h[j].CutTotal }
func (h levelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *levelHeap) Push(x interface{}) { *h = append(*h, x.(LevelStat)) }
func (h *levelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopCutLevels returns the k levels with the largest CutTotal, sorted
// descending. Returns nil if k <= 0 or stats is empty.
func TopCutLevels(stats []LevelStat, k int) []LevelStat {
	if k <= 0 || len(stats) == 0 {
		return nil
	}

	h := &levelHeap{}
	heap.Init(h)
	for _, s := range stats {
		if h.Len() < k {
			heap.Push(h, s)
		} else if s.CutTotal > (*h)[0].CutTotal {
			heap.Pop(h)
			heap.Push(h, s)
		}
	}

	out := make([]LevelStat, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(LevelStat)
	}
	return out
}
