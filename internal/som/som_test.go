package som

import (
	"testing"

	"github.com/drakos74/free-som/internal/data"
	"github.com/stretchr/testify/require"
)

// mockRandom replays the given values and records the requested ranges.
type mockRandom struct {
	floats []float64
	ints   []int
	fi, ii int
	ranges []int
}

func (m *mockRandom) Float64() float64 {
	if len(m.floats) == 0 {
		m.fi++
		return 0
	}
	f := m.floats[m.fi%len(m.floats)]
	m.fi++
	return f
}

func (m *mockRandom) Intn(n int) int {
	m.ranges = append(m.ranges, n)
	if len(m.ints) == 0 {
		m.ii++
		return 0
	}
	i := m.ints[m.ii%len(m.ints)] % n
	m.ii++
	return i
}

func newDataset(t *testing.T, samples ...data.Sample) *data.Dataset {
	ds, err := data.New(samples)
	require.NoError(t, err)
	return ds
}

func sample(label int, features ...float64) data.Sample {
	return data.Sample{
		Features: features,
		Label:    label,
	}
}

func newGrid1D(t *testing.T, values ...[]float64) *Grid {
	g, err := GridFrom([][][]float64{values})
	require.NoError(t, err)
	return g
}
