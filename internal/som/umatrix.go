package som

import (
	xmath "github.com/drakos74/free-som/internal/math"
	"gonum.org/v1/gonum/mat"
)

// neighbours are the axis adjacent offsets: up, down, left, right.
var neighbours = []Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// UMatrix computes the unified distance matrix of the grid.
// Each value is the mean euclidean distance of the prototype to its axis adjacent neighbours
// that lie within the grid. Low values indicate cells within a cluster.
func UMatrix(g *Grid) *mat.Dense {
	if g.rows == 0 || g.cols == 0 {
		// mat.NewDense does not accept zero dimensions
		return &mat.Dense{}
	}
	u := mat.NewDense(g.rows, g.cols, nil)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			v := g.nodes[i][j]
			var sum float64
			var count int
			for _, n := range neighbours {
				r, c := i+n.Row, j+n.Col
				if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
					continue
				}
				sum += xmath.Euclidean(v, g.nodes[r][c])
				count++
			}
			if count > 0 {
				u.Set(i, j, sum/float64(count))
			}
		}
	}
	return u
}
