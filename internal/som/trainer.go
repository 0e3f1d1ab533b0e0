package som

import (
	"fmt"

	"github.com/drakos74/free-som/internal/data"
	"github.com/rs/zerolog/log"
)

// State is the lifecycle state of a trainer.
type State int

const (
	NotStarted State = iota
	Training
	Trained
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Training:
		return "training"
	case Trained:
		return "trained"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Step describes a single training iteration.
type Step struct {
	Iteration int
	Sample    int
	BMU       Cell
	Radius    int
	Rate      float64
	Updated   int
}

// Observer is notified after every training iteration.
type Observer func(step Step)

// Trainer trains a self organising map on a dataset.
type Trainer struct {
	config    Config
	schedule  Schedule
	rnd       Random
	observers []Observer
	state     State
	grid      *Grid
}

// NewTrainer creates a new trainer for the given config and source of randomness.
func NewTrainer(config Config, rnd Random) *Trainer {
	return &Trainer{
		config:    config,
		schedule:  config.Schedule(),
		rnd:       rnd,
		observers: make([]Observer, 0),
	}
}

// Observe adds an observer for the training iterations.
func (t *Trainer) Observe(observer ...Observer) *Trainer {
	t.observers = append(t.observers, observer...)
	return t
}

// State returns the current state of the trainer.
func (t *Trainer) State() State {
	return t.state
}

// Grid returns the grid of the trainer, nil if training has not started.
func (t *Trainer) Grid() *Grid {
	return t.grid
}

// Train initialises a random grid and trains it on the dataset.
// All preconditions are checked before the grid is created,
// once the training starts it will always run to completion.
func (t *Trainer) Train(ds *data.Dataset) (*Grid, error) {
	if t.state != NotStarted {
		return nil, fmt.Errorf("trainer is %s: %w", t.state, InvalidConfigErr)
	}
	if err := t.config.Validate(); err != nil {
		return nil, err
	}
	if ds == nil || ds.Len() == 0 {
		return nil, data.EmptyDatasetErr
	}
	if ds.Dim() != t.config.Dim {
		return nil, fmt.Errorf("dataset has dimension %d but grid expects %d: %w", ds.Dim(), t.config.Dim, DimensionMismatchErr)
	}

	t.grid = NewGrid(t.config.Rows, t.config.Cols, t.config.Dim, t.rnd)
	t.state = Training

	log.Info().
		Int("rows", t.config.Rows).
		Int("cols", t.config.Cols).
		Int("dim", t.config.Dim).
		Int("iterations", t.config.Iterations).
		Int("samples", ds.Len()).
		Msg("training map")

	checkpoint := t.config.Iterations / 10
	if checkpoint == 0 {
		checkpoint = 1
	}
	for s := 0; s < t.config.Iterations; s++ {
		step := t.step(s, ds)
		if s%checkpoint == 0 {
			log.Info().
				Int("iteration", s).
				Int("radius", step.Radius).
				Float64("rate", step.Rate).
				Msg("training")
		}
		for _, observe := range t.observers {
			observe(step)
		}
	}

	t.state = Trained
	log.Info().Int("iterations", t.config.Iterations).Msg("training finished")
	return t.grid, nil
}

func (t *Trainer) step(s int, ds *data.Dataset) Step {
	sample := t.rnd.Intn(ds.Len())
	v := ds.Features(sample)
	bmu, _ := t.grid.BMU(v)
	radius := t.schedule.Radius(s)
	rate := t.schedule.Rate(s)

	var updated int
	for i := 0; i < t.grid.rows; i++ {
		for j := 0; j < t.grid.cols; j++ {
			c := Cell{Row: i, Col: j}
			// cells exactly at the radius are left untouched
			if bmu.Distance(c) < radius {
				t.grid.pull(c, v, rate)
				updated++
			}
		}
	}

	return Step{
		Iteration: s,
		Sample:    sample,
		BMU:       bmu,
		Radius:    radius,
		Rate:      rate,
		Updated:   updated,
	}
}
