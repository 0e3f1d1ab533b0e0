package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {

	type test struct {
		v1, v2 []float64
		d      float64
	}

	tests := map[string]test{
		"same": {
			v1: []float64{1, 2, 3, 4},
			v2: []float64{1, 2, 3, 4},
			d:  0,
		},
		"3-4-5": {
			v1: []float64{0, 0},
			v2: []float64{3, 4},
			d:  5,
		},
		"unit": {
			v1: []float64{0, 0, 0, 0},
			v2: []float64{1, 1, 1, 1},
			d:  2,
		},
		"negative": {
			v1: []float64{-1, 0, 0, 0},
			v2: []float64{1, 0, 0, 0},
			d:  2,
		},
		"empty": {
			v1: []float64{},
			v2: []float64{},
			d:  0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := Euclidean(tt.v1, tt.v2)
			assert.InDelta(t, tt.d, d, 1e-12)
			// symmetric
			assert.InDelta(t, d, Euclidean(tt.v2, tt.v1), 1e-12)
		})
	}

}

func TestEuclidean_DimensionMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Euclidean([]float64{1, 2, 3, 4}, []float64{1, 2, 3})
	})
}

func TestEuclidean_NonNegative(t *testing.T) {
	for i := 0; i < 100; i++ {
		f := float64(i)
		d := Euclidean([]float64{f, -f, math.Sqrt(f)}, []float64{-f, f, 0})
		assert.GreaterOrEqual(t, d, 0.0)
	}
}

func TestManhattan(t *testing.T) {

	type test struct {
		r1, c1, r2, c2 int
		d              int
	}

	tests := map[string]test{
		"same": {
			r1: 3, c1: 4, r2: 3, c2: 4,
			d: 0,
		},
		"row": {
			r1: 0, c1: 0, r2: 5, c2: 0,
			d: 5,
		},
		"col": {
			r1: 0, c1: 7, r2: 0, c2: 2,
			d: 5,
		},
		"diagonal": {
			r1: 1, c1: 1, r2: 4, c2: 5,
			d: 7,
		},
		"corners": {
			r1: 0, c1: 0, r2: 29, c2: 29,
			d: 58,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.d, Manhattan(tt.r1, tt.c1, tt.r2, tt.c2))
			assert.Equal(t, tt.d, Manhattan(tt.r2, tt.c2, tt.r1, tt.c1))
		})
	}
}

func TestFormat(t *testing.T) {

	type test struct {
		input     float64
		precision int
		output    string
	}

	tests := map[string]test{
		"0": {
			input:     0,
			precision: 2,
			output:    "0.00",
		},
		"-1": {
			input:     -1,
			precision: 2,
			output:    "-1.00",
		},
		"round": {
			input:     1.5555,
			precision: 2,
			output:    "1.56",
		},
		"3": {
			input:     0.12345,
			precision: 3,
			output:    "0.123",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Format(tt.input, tt.precision))
		})
	}

}
