package analytics

import "math"

// percent returns part/whole as a percentage rounded to one decimal. A zero
// whole yields 0 and the result never exceeds 100, which can otherwise
// happen when clicks were logged for campaigns whose send was never logged.
func percent(part, whole int) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	v := float64(part) / float64(whole) * 100
	if v > 100 {
		v = 100
	}
	return math.Round(v*10) / 10
}
