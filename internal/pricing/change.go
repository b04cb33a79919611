// Package pricing computes price deltas against a caller-supplied history.
// The functions are total: a zero previous price yields zero change rather
// than an error.
package pricing

import "math"

// DefaultThresholdPercent is the significance threshold applied when the
// caller does not supply one.
const DefaultThresholdPercent = 5.0

// PercentChange is the relative change from previous to current, in the
// 0-100 percentage convention. Zero when the previous price is zero.
func PercentChange(currentCents, previousCents int) float64 {
	if previousCents == 0 {
		return 0
	}
	return (float64(currentCents-previousCents) / float64(previousCents)) * 100
}

// IsSignificant reports whether the absolute change meets the threshold.
// Always false when the previous price is zero.
func IsSignificant(currentCents, previousCents int, thresholdPercent float64) bool {
	if previousCents == 0 {
		return false
	}
	return math.Abs(PercentChange(currentCents, previousCents)) >= thresholdPercent
}
