package som

import (
	"github.com/drakos74/free-som/internal/data"
)

// NoLabel marks a cell that no sample was mapped to.
const NoLabel = -1

// Mapping keeps the labels of all samples assigned to each cell, in dataset order.
type Mapping [][][]int

// Map assigns every sample of the dataset to its best matching unit on the grid.
func Map(g *Grid, ds *data.Dataset) Mapping {
	m := make(Mapping, g.rows)
	for i := range m {
		m[i] = make([][]int, g.cols)
		for j := range m[i] {
			m[i][j] = make([]int, 0)
		}
	}
	for t := 0; t < ds.Len(); t++ {
		s := ds.Sample(t)
		bmu, _ := g.BMU(s.Features)
		m[bmu.Row][bmu.Col] = append(m[bmu.Row][bmu.Col], s.Label)
	}
	return m
}

// Reduce reduces the labels of each cell to the most common one.
func (m Mapping) Reduce(k int) [][]int {
	labels := make([][]int, len(m))
	for i := range m {
		labels[i] = make([]int, len(m[i]))
		for j := range m[i] {
			labels[i][j] = MostCommon(m[i][j], k)
		}
	}
	return labels
}

// LabelMap returns the most common label of the samples mapped to each cell,
// or NoLabel for cells without samples.
func LabelMap(g *Grid, ds *data.Dataset) [][]int {
	return Map(g, ds).Reduce(ds.Classes())
}

// MostCommon returns the most frequent value in [0,k) of the given labels.
// Ties resolve to the lowest label, an empty list returns NoLabel.
// Labels outside [0,k) are ignored.
func MostCommon(labels []int, k int) int {
	if len(labels) == 0 || k < 1 {
		return NoLabel
	}
	counts := make([]int, k)
	for _, l := range labels {
		if l >= 0 && l < k {
			counts[l]++
		}
	}
	label := NoLabel
	max := 0
	for l, c := range counts {
		if c > max {
			max = c
			label = l
		}
	}
	return label
}
