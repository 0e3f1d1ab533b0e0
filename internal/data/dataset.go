package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	MalformedInputErr = errors.New("malformed input")
	EmptyDatasetErr   = errors.New("empty dataset")
)

// Sample is a single labeled feature vector.
type Sample struct {
	Features []float64 `json:"features"`
	Label    int       `json:"label"`
}

// Dataset is an ordered, immutable set of samples of the same dimension.
type Dataset struct {
	samples []Sample
	dim     int
	classes int
}

// New creates a new dataset from a copy of the given samples.
// All samples must have the same non-zero dimension, finite features and a non-negative label.
func New(samples []Sample) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, EmptyDatasetErr
	}
	dim := len(samples[0].Features)
	if dim == 0 {
		return nil, fmt.Errorf("sample 0 has no features: %w", MalformedInputErr)
	}
	classes := 0
	cp := make([]Sample, len(samples))
	for i, s := range samples {
		if len(s.Features) != dim {
			return nil, fmt.Errorf("sample %d has %d features instead of %d: %w", i, len(s.Features), dim, MalformedInputErr)
		}
		for k, f := range s.Features {
			if !finite(f) {
				return nil, fmt.Errorf("sample %d has non finite feature %d [%v]: %w", i, k, f, MalformedInputErr)
			}
		}
		if s.Label < 0 {
			return nil, fmt.Errorf("sample %d has negative label %d: %w", i, s.Label, MalformedInputErr)
		}
		if s.Label+1 > classes {
			classes = s.Label + 1
		}
		cp[i] = Sample{
			Features: append([]float64{}, s.Features...),
			Label:    s.Label,
		}
	}
	return &Dataset{
		samples: cp,
		dim:     dim,
		classes: classes,
	}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

// Dim returns the dimension of the feature vectors.
func (d *Dataset) Dim() int {
	return d.dim
}

// Classes returns the number of possible label values i.e. the max label + 1.
func (d *Dataset) Classes() int {
	return d.classes
}

// Sample returns the sample at index i.
func (d *Dataset) Sample(i int) Sample {
	return d.samples[i]
}

// Features returns the feature vector of the sample at index i.
// The slice is owned by the dataset and must not be modified.
func (d *Dataset) Features(i int) []float64 {
	return d.samples[i].Features
}

// Label returns the label of the sample at index i.
func (d *Dataset) Label(i int) int {
	return d.samples[i].Label
}

// Load loads a dataset from the given file.
// Each line is expected as 'f1,...,fDim,label' with no header.
func Load(fileName string, dim int) (*Dataset, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open file '%s': %w", fileName, err)
	}
	defer f.Close()
	ds, err := Read(f, dim)
	if err != nil {
		return nil, fmt.Errorf("could not load dataset from '%s': %w", fileName, err)
	}
	log.Info().
		Str("file", fileName).
		Int("samples", ds.Len()).
		Int("dim", ds.Dim()).
		Int("classes", ds.Classes()).
		Msg("loaded dataset")
	return ds, nil
}

// Read parses a dataset from the given reader.
func Read(r io.Reader, dim int) (*Dataset, error) {
	if dim < 1 {
		return nil, fmt.Errorf("invalid feature dimension %d", dim)
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = dim + 1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	samples := make([]Sample, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read record: %s: %w", err.Error(), MalformedInputErr)
		}
		line, _ := reader.FieldPos(0)
		sample, err := parse(record, dim)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples = append(samples, sample)
	}
	return New(samples)
}

func parse(record []string, dim int) (Sample, error) {
	features := make([]float64, dim)
	for i := 0; i < dim; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return Sample{}, fmt.Errorf("could not parse feature %d '%s': %w", i, record[i], MalformedInputErr)
		}
		if !finite(f) {
			return Sample{}, fmt.Errorf("feature %d '%s' is not a finite number: %w", i, record[i], MalformedInputErr)
		}
		features[i] = f
	}
	label, err := strconv.Atoi(strings.TrimSpace(record[dim]))
	if err != nil {
		return Sample{}, fmt.Errorf("could not parse label '%s': %w", record[dim], MalformedInputErr)
	}
	if label < 0 {
		return Sample{}, fmt.Errorf("negative label %d: %w", label, MalformedInputErr)
	}
	return Sample{
		Features: features,
		Label:    label,
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
