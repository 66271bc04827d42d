// pkg/cleaner/stats.go
package cleaner

import "sort"

// median returns the middle value of the data (mean of the two middle
// values for even lengths). Returns 0 for empty input.
func median(values []float64) float64 {
	return quantile(values, 0.5)
}

// mean returns the arithmetic mean of the data. Returns 0 for empty
// input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// quantile returns the p-quantile of the data using linear
// interpolation between closest ranks (h = (n-1)*p), the same method
// pandas and numpy default to. Returns 0 for empty input.
func quantile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return values[0]
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	h := float64(n-1) * p
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// mode returns the most frequent value. Ties resolve to the value that
// sorts first lexicographically. Returns "" for empty input.
func mode(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := ""
	bestCount := 0
	for v, count := range counts {
		if count > bestCount || (count == bestCount && v < best) {
			best = v
			bestCount = count
		}
	}
	return best
}
