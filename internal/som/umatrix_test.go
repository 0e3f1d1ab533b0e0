package som

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUMatrix(t *testing.T) {

	type test struct {
		grid [][][]float64
		u    [][]float64
	}

	tests := map[string]test{
		"2x2": {
			grid: [][][]float64{
				{{0}, {1}},
				{{2}, {4}},
			},
			u: [][]float64{
				{1.5, 2},
				{2, 2.5},
			},
		},
		"center": {
			grid: [][][]float64{
				{{0}, {0}, {0}},
				{{0}, {1}, {0}},
				{{0}, {0}, {0}},
			},
			u: [][]float64{
				{0, 1.0 / 3, 0},
				{1.0 / 3, 1, 1.0 / 3},
				{0, 1.0 / 3, 0},
			},
		},
		"uniform": {
			grid: [][][]float64{
				{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}},
				{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}},
			},
			u: [][]float64{
				{0, 0, 0},
				{0, 0, 0},
			},
		},
		"single": {
			grid: [][][]float64{
				{{0.5, 0.5}},
			},
			u: [][]float64{
				{0},
			},
		},
		"row": {
			grid: [][][]float64{
				{{0, 0}, {3, 4}, {3, 4}},
			},
			u: [][]float64{
				{5, 2.5, 0},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := GridFrom(tt.grid)
			require.NoError(t, err)
			u := UMatrix(g)
			r, c := u.Dims()
			require.Equal(t, len(tt.u), r)
			require.Equal(t, len(tt.u[0]), c)
			for i := range tt.u {
				assert.InDeltaSlice(t, tt.u[i], u.RawRowView(i), 1e-12)
			}
		})
	}
}

func TestUMatrix_NonNegative(t *testing.T) {
	g := NewGrid(30, 30, 4, rand.New(rand.NewSource(1)))
	u := UMatrix(g)
	r, c := u.Dims()
	assert.Equal(t, 30, r)
	assert.Equal(t, 30, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.GreaterOrEqual(t, u.At(i, j), 0.0)
		}
	}
}

func TestUMatrix_Empty(t *testing.T) {
	g, err := GridFrom(nil)
	require.NoError(t, err)
	r, c := UMatrix(g).Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
}
