package analysis

import (
	"fmt"
	"math"
)

// FormatLargeNumbers renders v scaled to the largest applicable unit with two
// decimals, e.g. "2.50 Billion". Negative values scale by magnitude and keep
// their sign. NaN renders as "N/A" and infinities as "Infinity"/"-Infinity".
func FormatLargeNumbers(v float64) string {
	switch {
	case math.IsNaN(v):
		return "N/A"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// avoid "-0.00"
		v = 0
	}

	magnitude := math.Abs(v)
	switch {
	case magnitude >= 1e9:
		return fmt.Sprintf("%.2f Billion", v/1e9)
	case magnitude >= 1e6:
		return fmt.Sprintf("%.2f Million", v/1e6)
	case magnitude >= 1e3:
		return fmt.Sprintf("%.2f Thousand", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// PercentChange returns the change from start to end in percent. It reports
// false when either endpoint is absent or start is zero.
func PercentChange(start, end float64, hasStart, hasEnd bool) (float64, bool) {
	if !hasStart || !hasEnd {
		return 0, false
	}
	if start == 0 || math.IsNaN(start) || math.IsNaN(end) {
		return 0, false
	}
	change := (end - start) / start * 100
	if math.IsInf(change, 0) || math.IsNaN(change) {
		return 0, false
	}
	return change, true
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
