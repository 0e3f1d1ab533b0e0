package som

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostCommon(t *testing.T) {

	type test struct {
		labels []int
		k      int
		label  int
	}

	tests := map[string]test{
		"majority": {
			labels: []int{0, 2, 2, 1, 0, 1, 1, 2, 1},
			k:      3,
			label:  1,
		},
		"empty": {
			labels: []int{},
			k:      3,
			label:  NoLabel,
		},
		"nil": {
			k:     3,
			label: NoLabel,
		},
		"single": {
			labels: []int{2},
			k:      3,
			label:  2,
		},
		"tie-lowest": {
			labels: []int{2, 1, 2, 1},
			k:      3,
			label:  1,
		},
		"tie-all": {
			labels: []int{2, 0, 1},
			k:      3,
			label:  0,
		},
		"out-of-range": {
			labels: []int{5, 5, 5, 1},
			k:      3,
			label:  1,
		},
		"no-classes": {
			labels: []int{0, 0},
			k:      0,
			label:  NoLabel,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.label, MostCommon(tt.labels, tt.k))
		})
	}
}

func TestMap(t *testing.T) {
	g := newGrid1D(t, []float64{0}, []float64{5}, []float64{10})
	ds := newDataset(t,
		sample(1, 0.3),
		sample(0, 0.1),
		sample(2, 9),
		sample(0, 0.2),
		sample(2, 11),
	)

	m := Map(g, ds)
	assert.Equal(t, Mapping{
		{
			{1, 0, 0},
			{},
			{2, 2},
		},
	}, m)

	assert.Equal(t, [][]int{{0, NoLabel, 2}}, m.Reduce(ds.Classes()))
	assert.Equal(t, [][]int{{0, NoLabel, 2}}, LabelMap(g, ds))
}

func TestLabelMap_Tie(t *testing.T) {
	g := newGrid1D(t, []float64{0}, []float64{10})
	ds := newDataset(t,
		sample(2, 0.1),
		sample(1, 0.2),
		sample(1, 9.9),
		sample(2, 9.8),
	)
	assert.Equal(t, [][]int{{1, 1}}, LabelMap(g, ds))
}

func TestEvaluate(t *testing.T) {
	g := newGrid1D(t, []float64{0}, []float64{10}, []float64{20})
	ds := newDataset(t,
		sample(0, 1),
		sample(1, 9),
		sample(1, 12),
	)
	q := Evaluate(g, ds)
	assert.InDelta(t, 4.0/3, q.QuantizationError, 1e-12)
	assert.Equal(t, 2, q.Hits)
}
