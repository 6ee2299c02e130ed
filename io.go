package batchpartition

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// resultDoc mirrors Result for serialization; the lazily-built BatchOf
// index is a derived cache and is not persisted, matching the teacher's
// Save/Load (kmp.go, pmp.go), which round-trips only the computed fields.
type resultDoc struct {
	Batches  [][]int `json:"batches"`
	Isolated []int   `json:"isolated"`
}

// Save writes r to filepath in the given format. Only "json" is supported
// today, following the teacher's Save signature (filepath, format string).
func (r *Result) Save(filepath, format string) error {
	switch format {
	case "json":
		f, err := os.Create(filepath)
		if err != nil {
			return err
		}
		defer f.Close()

		out, err := json.Marshal(resultDoc{Batches: r.Batches, Isolated: r.Isolated})
		if err != nil {
			return err
		}
		_, err = f.Write(out)
		return err
	default:
		return fmt.Errorf("batchpartition: invalid save format, %s", format)
	}
}

// Load reads a Result previously written by Save.
func Load(filepath, format string) (*Result, error) {
	switch format {
	case "json":
		f, err := os.Open(filepath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}

		var doc resultDoc
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return &Result{Batches: doc.Batches, Isolated: doc.Isolated}, nil
	default:
		return nil, fmt.Errorf("batchpartition: invalid load format, %s", format)
	}
}
