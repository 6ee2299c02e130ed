package batchpartition

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Visualize renders a bar chart of batch sizes for r, following the
// teacher's visualize.go gonum/plot pipeline (plot.New, a plotter, then
// Plot.Save). Empty retained batches are skipped. filename's extension
// selects the output format supported by vg/draw (png, pdf, svg, ...).
func Visualize(r *Result, filename string) error {
	p := plot.New()
	p.Title.Text = "batch sizes"
	p.X.Label.Text = "batch"
	p.Y.Label.Text = "nodes"

	sizes := make(plotter.Values, 0, len(r.Batches))
	for _, b := range r.Batches {
		if len(b) == 0 {
			continue
		}
		sizes = append(sizes, float64(len(b)))
	}

	bars, err := plotter.NewBarChart(sizes, vg.Points(20))
	if err != nil {
		return fmt.Errorf("batchpartition: failed to build bar chart: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
