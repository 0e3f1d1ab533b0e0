package report

import (
	"fmt"
	"time"

	"github.com/drakos74/free-som/internal/data"
	"github.com/drakos74/free-som/internal/som"
	"github.com/drakos74/free-som/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

const Label = "report"

// Report holds the outputs of a trained map, ready for rendering.
type Report struct {
	ID      string      `json:"id"`
	Created time.Time   `json:"created"`
	Config  som.Config  `json:"config"`
	Samples int         `json:"samples"`
	Classes int         `json:"classes"`
	Quality som.Quality `json:"quality"`
	UMatrix [][]float64 `json:"u_matrix"`
	Labels  [][]int     `json:"labels"`
}

// Build computes the u-matrix, the label map and the quality of the trained grid.
func Build(config som.Config, grid *som.Grid, ds *data.Dataset) Report {
	log.Info().Msg("building u-matrix")
	u := som.UMatrix(grid)
	log.Info().Msg("mapping labels")
	labels := som.LabelMap(grid, ds)
	quality := som.Evaluate(grid, ds)
	log.Info().
		Float64("quantization-error", quality.QuantizationError).
		Int("hits", quality.Hits).
		Msg("evaluated map")
	return Report{
		ID:      uuid.New().String(),
		Created: time.Now(),
		Config:  config,
		Samples: ds.Len(),
		Classes: ds.Classes(),
		Quality: quality,
		UMatrix: Rows(u),
		Labels:  labels,
	}
}

// Key returns the storage key of the report.
func (r Report) Key() storage.Key {
	return storage.Key{
		ID:    r.ID,
		Label: Label,
	}
}

// Store persists the report.
func (r Report) Store(store storage.Persistence) error {
	if err := store.Store(r.Key(), r); err != nil {
		return fmt.Errorf("could not store report '%s': %w", r.ID, err)
	}
	log.Info().Str("id", r.ID).Msg("stored report")
	return nil
}

// Rows converts the matrix into a slice of rows.
func Rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}
