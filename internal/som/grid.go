package som

import (
	"fmt"
	"math"

	xmath "github.com/drakos74/free-som/internal/math"
)

// Random is the source of randomness for the map initialisation and the sampling during training.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Cell is the coordinate of a node on the map.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Distance returns the manhattan distance to the other cell.
func (c Cell) Distance(other Cell) int {
	return xmath.Manhattan(c.Row, c.Col, other.Row, other.Col)
}

// Grid is the map of prototype vectors.
type Grid struct {
	rows, cols, dim int
	nodes           [][][]float64
}

// NewGrid creates a new grid with every component drawn uniformly from [0,1).
// Components are drawn in row-major order, one vector at a time.
func NewGrid(rows, cols, dim int, rnd Random) *Grid {
	g := newGrid(rows, cols, dim)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for k := 0; k < dim; k++ {
				g.nodes[i][j][k] = rnd.Float64()
			}
		}
	}
	return g
}

// GridFrom creates a grid from the given prototype vectors.
func GridFrom(nodes [][][]float64) (*Grid, error) {
	rows := len(nodes)
	if rows == 0 {
		return newGrid(0, 0, 0), nil
	}
	cols := len(nodes[0])
	dim := 0
	if cols > 0 {
		dim = len(nodes[0][0])
	}
	g := newGrid(rows, cols, dim)
	for i := 0; i < rows; i++ {
		if len(nodes[i]) != cols {
			return nil, fmt.Errorf("row %d has %d columns instead of %d: %w", i, len(nodes[i]), cols, DimensionMismatchErr)
		}
		for j := 0; j < cols; j++ {
			if len(nodes[i][j]) != dim {
				return nil, fmt.Errorf("node %d,%d has dimension %d instead of %d: %w", i, j, len(nodes[i][j]), dim, DimensionMismatchErr)
			}
			copy(g.nodes[i][j], nodes[i][j])
		}
	}
	return g, nil
}

func newGrid(rows, cols, dim int) *Grid {
	nodes := make([][][]float64, rows)
	for i := range nodes {
		nodes[i] = make([][]float64, cols)
		for j := range nodes[i] {
			nodes[i][j] = make([]float64, dim)
		}
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		dim:   dim,
		nodes: nodes,
	}
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) Dim() int {
	return g.dim
}

// At returns the prototype vector of the given cell.
// The returned slice is owned by the grid.
func (g *Grid) At(c Cell) []float64 {
	return g.nodes[c.Row][c.Col]
}

// Nodes returns a copy of all prototype vectors.
func (g *Grid) Nodes() [][][]float64 {
	nodes := make([][][]float64, g.rows)
	for i := range g.nodes {
		nodes[i] = make([][]float64, g.cols)
		for j := range g.nodes[i] {
			nodes[i][j] = append([]float64{}, g.nodes[i][j]...)
		}
	}
	return nodes
}

// BMU returns the best matching unit for the given vector and its distance to it.
// All cells are scanned in row-major order and the first minimum wins.
// An empty grid returns the (0,0) cell with the max distance.
func (g *Grid) BMU(v []float64) (Cell, float64) {
	bmu := Cell{}
	min := math.MaxFloat64
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			d := xmath.Euclidean(g.nodes[i][j], v)
			if d < min {
				min = d
				bmu = Cell{Row: i, Col: j}
			}
		}
	}
	return bmu, min
}

// pull moves the prototype of the cell towards v by the given rate.
func (g *Grid) pull(c Cell, v []float64, rate float64) {
	node := g.nodes[c.Row][c.Col]
	for k := range node {
		node[k] += rate * (v[k] - node[k])
	}
}
