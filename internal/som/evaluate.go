package som

import (
	"github.com/drakos74/free-som/internal/data"
	"gonum.org/v1/gonum/stat"
)

// Quality summarises how well the grid represents the dataset.
type Quality struct {
	// QuantizationError is the mean distance of every sample to its best matching unit.
	QuantizationError float64 `json:"quantization_error"`
	// Hits is the number of cells that are the best matching unit of at least one sample.
	Hits int `json:"hits"`
}

// Evaluate computes the quality of the trained grid for the dataset.
func Evaluate(g *Grid, ds *data.Dataset) Quality {
	distances := make([]float64, ds.Len())
	hits := make(map[Cell]struct{})
	for t := 0; t < ds.Len(); t++ {
		bmu, d := g.BMU(ds.Features(t))
		distances[t] = d
		hits[bmu] = struct{}{}
	}
	var qe float64
	if len(distances) > 0 {
		qe = stat.Mean(distances, nil)
	}
	return Quality{
		QuantizationError: qe,
		Hits:              len(hits),
	}
}
