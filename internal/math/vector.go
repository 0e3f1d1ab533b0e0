package math

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the L2 distance between the two vectors.
// NOTE : vectors of different length are a programming error and will panic.
func Euclidean(v1, v2 []float64) float64 {
	if len(v1) != len(v2) {
		panic(fmt.Sprintf("dimension mismatch for euclidean distance: %d vs %d", len(v1), len(v2)))
	}
	return floats.Distance(v1, v2, 2)
}

// Manhattan returns the grid distance between the cells (r1,c1) and (r2,c2).
func Manhattan(r1, c1, r2, c2 int) int {
	return abs(r1-r2) + abs(c1-c2)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
