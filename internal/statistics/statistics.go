// Package statistics holds the numeric helpers used to summarize request-time samples.
package statistics

import (
	"errors"
	"sort"
)

// ErrEmptyInput is returned alongside a zero value when a sample set is empty.
// It is a warning: callers log it and carry on.
var ErrEmptyInput = errors.New("empty sample set")

// Sum returns the sum of samples.
func Sum(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum
}

// Max returns the largest sample, or 0 for an empty slice.
func Max(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	largest := samples[0]
	for _, v := range samples[1:] {
		if v > largest {
			largest = v
		}
	}
	return largest
}

// Mean returns the arithmetic mean of samples.
func Mean(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyInput
	}
	return Sum(samples) / float64(len(samples)), nil
}

// Median returns the middle value of a sorted copy of samples, or the mean of
// the two middle values for an even count. samples is not modified.
// Callers must not pass an empty slice; 0 is returned if they do.
func Median(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
