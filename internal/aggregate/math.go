// Package aggregate holds the reductions shared by the reporting domains:
// rounding, percentages, fixed buckets and the grouping pipelines.
package aggregate

import "math"

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// Percent is part/total*100 rounded to two decimals, and exactly 0 when
// total is 0.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(part / total * 100)
}

// Ratio is sum/count rounded, 0 for an empty set.
func Ratio(sum, count float64) float64 {
	if count == 0 {
		return 0
	}
	return Round2(sum / count)
}
