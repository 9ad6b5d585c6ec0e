package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"dashboard.nigeriaindicators.org/internal/analysis"
)

// ParseIntParam retrieves an int64 value from the provided URL query parameters.
// If the key is not present it returns the fallback; if the value is invalid it
// returns the fallback and updates the fieldErrors map.
func ParseIntParam(params url.Values, key string, fallback int64, fieldErrors map[string][]string) (int64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return fallback, fieldErrors
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return fallback, fieldErrors
	}
	return n, fieldErrors
}

// ParseStringParam returns the sanitized value of key, or the fallback when absent.
func ParseStringParam(params url.Values, key string, fallback string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	if _, present := params[key]; !present {
		return fallback, fieldErrors
	}

	val, err := ValidateAndSanitizeIndicator(params.Get(key))
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return fallback, fieldErrors
	}
	return val, fieldErrors
}

// ParseSelection reads start, end, indicator, x and y from the query, falling
// back to defaults for anything absent. Unparseable values are reported in
// the returned field errors and replaced by the default.
func ParseSelection(params url.Values, defaults analysis.Selection) (analysis.Selection, map[string][]string) {
	fieldErrors := make(map[string][]string)
	sel := defaults

	sel.Start, fieldErrors = ParseIntParam(params, "start", defaults.Start, fieldErrors)
	sel.End, fieldErrors = ParseIntParam(params, "end", defaults.End, fieldErrors)
	sel.Indicator, fieldErrors = ParseStringParam(params, "indicator", defaults.Indicator, fieldErrors)
	sel.X, fieldErrors = ParseStringParam(params, "x", defaults.X, fieldErrors)
	sel.Y, fieldErrors = ParseStringParam(params, "y", defaults.Y, fieldErrors)

	return sel, fieldErrors
}

// MergeFieldErrors appends every message of src into dst.
func MergeFieldErrors(dst, src map[string][]string) map[string][]string {
	if dst == nil {
		dst = make(map[string][]string)
	}
	for field, messages := range src {
		dst[field] = append(dst[field], messages...)
	}
	return dst
}
