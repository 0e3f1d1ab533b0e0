package som

// Schedule derives the neighbourhood radius and learning rate for each training iteration.
// Both decay linearly with the remaining fraction of iterations.
type Schedule struct {
	Iterations   int
	MaxRadius    int
	LearningRate float64
}

// Progress returns the remaining fraction of the training at iteration i.
func (s Schedule) Progress(i int) float64 {
	return 1.0 - float64(i)/float64(s.Iterations)
}

// Radius returns the neighbourhood radius at iteration i.
func (s Schedule) Radius(i int) int {
	r := int(s.Progress(i) * float64(s.MaxRadius))
	if r < 0 {
		return 0
	}
	return r
}

// Rate returns the learning rate at iteration i.
func (s Schedule) Rate(i int) float64 {
	r := s.Progress(i) * s.LearningRate
	if r < 0 {
		return 0
	}
	return r
}
