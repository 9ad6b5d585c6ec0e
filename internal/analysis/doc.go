// Package analysis computes the dashboard views from the prepared indicator
// table: range validation, the trend series, the start/end comparison and
// the min-max normalized relationship between two indicators. Every function
// is pure; callers recompute views per request.
package analysis
