package format

import "strings"

// ProgressState tracks the completed fraction of each concurrent run and
// averages them into a single figure.
type ProgressState struct {
	progresses []float64
	numRuns    int
}

// NewProgressState creates a state tracking numRuns runs.
func NewProgressState(numRuns int) *ProgressState {
	if numRuns < 0 {
		numRuns = 0
	}
	return &ProgressState{
		progresses: make([]float64, numRuns),
		numRuns:    numRuns,
	}
}

// Update records the progress of one run. Values are clamped to [0, 1] and
// out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = clamp01(value)
}

// CalculateAverage returns the mean progress over all runs.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numRuns == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numRuns)
}

// ProgressBar renders a bar of the given width with full and light shade
// blocks.
func ProgressBar(progress float64, length int) string {
	count := int(clamp01(progress) * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

func clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < 0:
		return 0
	}
	return v
}
