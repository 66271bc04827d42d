package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{
			name:   "first quartile with interpolation",
			values: []float64{1, 2, 3, 4, 5, 100},
			p:      0.25,
			want:   2.25,
		},
		{
			name:   "third quartile with interpolation",
			values: []float64{1, 2, 3, 4, 5, 100},
			p:      0.75,
			want:   4.75,
		},
		{
			name:   "median of odd length",
			values: []float64{5, 1, 3},
			p:      0.5,
			want:   3,
		},
		{
			name:   "median of even length",
			values: []float64{4, 1, 3, 2},
			p:      0.5,
			want:   2.5,
		},
		{
			name:   "minimum",
			values: []float64{2, 1, 3},
			p:      0,
			want:   1,
		},
		{
			name:   "maximum",
			values: []float64{2, 1, 3},
			p:      1,
			want:   3,
		},
		{
			name:   "single value",
			values: []float64{7},
			p:      0.25,
			want:   7,
		},
		{
			name:   "empty input",
			values: nil,
			p:      0.5,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, quantile(tt.values, tt.p), 1e-9)
		})
	}
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	quantile(values, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedianAndMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 10}

	assert.InDelta(t, 3.0, median(values), 1e-9)
	assert.InDelta(t, 4.0, mean(values), 1e-9)
	assert.Equal(t, 0.0, mean(nil))
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "clear winner",
			values: []string{"x", "y", "y", "z"},
			want:   "y",
		},
		{
			name:   "tie resolves lexicographically",
			values: []string{"b", "a", "b", "a"},
			want:   "a",
		},
		{
			name:   "three way tie",
			values: []string{"c", "b", "a"},
			want:   "a",
		},
		{
			name:   "empty input",
			values: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mode(tt.values))
		})
	}
}
