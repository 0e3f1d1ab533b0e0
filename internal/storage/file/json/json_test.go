package json

import (
	"testing"

	"github.com/drakos74/free-som/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type value struct {
	Name   string      `json:"name"`
	Matrix [][]float64 `json:"matrix"`
}

func TestBlobStorage(t *testing.T) {

	s := NewJsonBlob("som", "test", true).WithPath(t.TempDir())

	k := storage.Key{
		ID:    uuid.New().String(),
		Label: "report",
	}

	v := value{
		Name:   "u-matrix",
		Matrix: [][]float64{{0.1, 0.2}, {0.3, 0.4}},
	}

	err := s.Store(k, v)
	require.NoError(t, err)

	var loaded value
	err = s.Load(k, &loaded)
	require.NoError(t, err)
	assert.Equal(t, v, loaded)

	err = s.Load(storage.Key{ID: "missing", Label: "report"}, &loaded)
	assert.ErrorIs(t, err, storage.NotFoundErr)
}
