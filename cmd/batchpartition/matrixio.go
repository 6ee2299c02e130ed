package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/matrix-profile-foundation/go-batchpartition/bitmatrix"
)

// loadMatrix reads a symmetric boolean pruning matrix from a CSV file, one
// row per line, cells "0"/"1". This is the on-disk shape the CLI accepts;
// computing P from raw time series is out of scope (spec.md Non-goals).
func loadMatrix(path string) (*bitmatrix.Matrix, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("batchpartition: failed to open matrix file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("batchpartition: failed to parse matrix csv: %w", err)
	}

	rows := make([][]bool, len(records))
	for i, rec := range records {
		row := make([]bool, len(rec))
		for j, cell := range rec {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, 0, fmt.Errorf("batchpartition: matrix cell [%d][%d] is not an integer: %w", i, j, err)
			}
			row[j] = v != 0
		}
		rows[i] = row
	}

	m, err := bitmatrix.FromRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return m, m.N(), nil
}
