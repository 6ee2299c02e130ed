// Package runner executes many independent batch-partitioning jobs
// concurrently. spec.md §5 licenses this explicitly: "Multiple independent
// partitioning runs may execute in parallel on disjoint (P, n, B) inputs;
// within one run the core makes no concurrency assumptions." Each job's
// own Partition call remains single-threaded; only the fan-out across jobs
// is parallel.
//
// The fan-out/merge shape follows the teacher's compute.go stomp/stamp
// batch-and-merge (a worker goroutine per batch, a WaitGroup, and an
// ordered merge of per-worker results), and the worker-count-from-
// available-parallelism idiom of jussi-kalliokoski-par's par.Map/parts
// helper (here the worker count defaults to runtime.NumCPU and is capped at
// the number of jobs).
package runner

import (
	"runtime"
	"sync"

	"github.com/matrix-profile-foundation/go-batchpartition"
	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
)

// Job is one independent partitioning request.
type Job struct {
	P    *bitmatrix.Matrix
	N    int
	B    int
	Opts *batchpartition.Options
}

// JobResult pairs a Job's outcome with its original index so callers can
// correlate results back to the jobs slice they submitted, even though
// jobs complete out of order.
type JobResult struct {
	Index  int
	Result *batchpartition.Result
	Err    error
}

// Run executes jobs concurrently and returns one JobResult per job, in the
// same order as jobs (deterministic output order; non-deterministic
// completion order). Parallelism caps the number of concurrently running
// jobs; if <= 0, runtime.NumCPU() is used, matching the teacher's
// ComputeOptions default.
func Run(jobs []Job, parallelism int) []JobResult {
	if len(jobs) == 0 {
		return nil
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(jobs) {
		parallelism = len(jobs)
	}

	results := make([]JobResult, len(jobs))
	work := make(chan int)

	var wg sync.WaitGroup
	wg.Add(parallelism)
	for w := 0; w < parallelism; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				job := jobs[idx]
				res, err := batchpartition.Partition(job.P, job.N, job.B, job.Opts)
				results[idx] = JobResult{Index: idx, Result: res, Err: err}
			}
		}()
	}

	for idx := range jobs {
		work <- idx
	}
	close(work)
	wg.Wait()

	return results
}
