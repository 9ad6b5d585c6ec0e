package analysis

import "dashboard.nigeriaindicators.org/internal/indicators"

// MinMaxNormalize rescales values to [0, 1] using their own minimum and
// maximum. Missing values stay missing and are ignored when finding the
// bounds. A constant series, or one without any present value, is returned
// unscaled.
func MinMaxNormalize(values []float64) []float64 {
	normalized, _ := minMaxNormalize(values)
	return normalized
}

func minMaxNormalize(values []float64) ([]float64, bool) {
	out := append([]float64(nil), values...)

	lo, hi, ok := bounds(values)
	if !ok || hi-lo == 0 {
		return out, false
	}

	span := hi - lo
	for i, v := range out {
		if indicators.IsMissing(v) {
			continue
		}
		out[i] = (v - lo) / span
	}
	return out, true
}

func bounds(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if indicators.IsMissing(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}
