package som

import (
	"errors"
	"fmt"
)

var (
	InvalidConfigErr     = errors.New("invalid config")
	DimensionMismatchErr = errors.New("dimension mismatch")
)

const (
	DefaultRows         = 30
	DefaultCols         = 30
	DefaultDim          = 4
	DefaultIterations   = 5000
	DefaultLearningRate = 0.5
	DefaultSeed         = 1
)

// Config defines the hyperparameters of the map and its training.
type Config struct {
	Rows         int     `json:"rows"`
	Cols         int     `json:"cols"`
	Dim          int     `json:"dim"`
	Iterations   int     `json:"iterations"`
	LearningRate float64 `json:"learning_rate"`
	// MaxRadius is the initial neighbourhood range in manhattan distance.
	MaxRadius int   `json:"max_radius"`
	Seed      int64 `json:"seed"`
}

// DefaultConfig returns the config for a 30x30 map on 4 dimensional data.
func DefaultConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Dim:          DefaultDim,
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		MaxRadius:    DefaultRows + DefaultCols,
		Seed:         DefaultSeed,
	}
}

// Validate checks that the config can be used for training.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("grid size must be positive [%d x %d]: %w", c.Rows, c.Cols, InvalidConfigErr)
	}
	if c.Dim < 1 {
		return fmt.Errorf("dimension must be positive [%d]: %w", c.Dim, InvalidConfigErr)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive [%d]: %w", c.Iterations, InvalidConfigErr)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning rate must not be negative [%f]: %w", c.LearningRate, InvalidConfigErr)
	}
	if c.MaxRadius < 0 {
		return fmt.Errorf("max radius must not be negative [%d]: %w", c.MaxRadius, InvalidConfigErr)
	}
	return nil
}

// Schedule returns the training schedule for the config.
func (c Config) Schedule() Schedule {
	return Schedule{
		Iterations:   c.Iterations,
		MaxRadius:    c.MaxRadius,
		LearningRate: c.LearningRate,
	}
}
