package indicators

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads and prepares the indicator CSV at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening indicator source: %w", err)
	}
	defer f.Close() // nolint

	table, err := Prepare(f)
	if err != nil {
		return nil, fmt.Errorf("error preparing %s: %w", path, err)
	}
	return table, nil
}

// Prepare parses the indicator CSV and returns the cleaned table.
//
// Headers are renamed to display names, the year keeps only its last four
// characters, every indicator becomes a float64, GDP is rounded to whole
// dollars and zeros reported for MaskedYear become missing.
func Prepare(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Missing: SourceHeaders()}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	layout, err := resolveLayout(header)
	if err != nil {
		return nil, err
	}

	names := DisplayNames()
	gdpIndex := indexOf(names, GDP)

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &ValueError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if len(row) != len(header) {
			return nil, &ValueError{Line: line, Err: fmt.Errorf("expected %d fields, got %d", len(header), len(row))}
		}

		year, err := normalizeYear(row[layout.year])
		if err != nil {
			return nil, &YearError{Line: line, Token: row[layout.year]}
		}

		values := make([]float64, len(names))
		for i, pos := range layout.values {
			v, err := parseValue(row[pos])
			if err != nil {
				return nil, &ValueError{Line: line, Column: names[i], Value: row[pos], Err: err}
			}
			values[i] = v
		}

		if gdpIndex >= 0 {
			values[gdpIndex] = roundWhole(values[gdpIndex])
		}
		if year == MaskedYear {
			maskZeros(values)
		}

		records = append(records, Record{Year: year, Values: values})
	}

	return newTable(names, records), nil
}

// layout maps display positions to CSV field positions.
type layout struct {
	year   int
	values []int
}

func resolveLayout(header []string) (layout, error) {
	positions := make(map[string]int, len(header))
	schemaErr := &SchemaError{}

	for pos, h := range header {
		name, ok := displayNameFor(h)
		if !ok {
			schemaErr.Unexpected = append(schemaErr.Unexpected, normalizeHeader(h))
			continue
		}
		if _, seen := positions[name]; seen {
			schemaErr.Duplicate = append(schemaErr.Duplicate, normalizeHeader(h))
			continue
		}
		positions[name] = pos
	}

	for _, c := range schema {
		if _, ok := positions[c.display]; !ok {
			schemaErr.Missing = append(schemaErr.Missing, normalizeHeader(c.source))
		}
	}

	if len(schemaErr.Missing) > 0 || len(schemaErr.Unexpected) > 0 || len(schemaErr.Duplicate) > 0 {
		return layout{}, schemaErr
	}

	l := layout{year: positions[YearColumn]}
	for _, name := range DisplayNames() {
		l.values = append(l.values, positions[name])
	}
	return l, nil
}

// normalizeYear keeps the last four characters of the raw token, so values
// such as "YR1999" resolve to 1999.
func normalizeYear(raw string) (int64, error) {
	token := []rune(strings.TrimSpace(raw))
	if len(token) < 4 {
		return 0, fmt.Errorf("year token %q shorter than four characters", raw)
	}
	suffix := string(token[len(token)-4:])
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("year suffix %q is not numeric", suffix)
		}
	}
	return strconv.ParseInt(suffix, 10, 64)
}

func parseValue(raw string) (float64, error) {
	cell := strings.TrimSpace(raw)
	if cell == "" {
		return Missing(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

// roundWhole matches fixed-point "%.0f" formatting, which rounds half to even.
func roundWhole(v float64) float64 {
	if IsMissing(v) || math.IsInf(v, 0) {
		return v
	}
	return math.RoundToEven(v)
}

func maskZeros(values []float64) {
	for i, v := range values {
		if v == 0 {
			values[i] = Missing()
		}
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
