package indicators

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// bundledDataPath returns the absolute path of the dataset shipped in data/.
func bundledDataPath(t *testing.T) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("..", "..", "data", "nigeria_indicators_data.csv"))
	require.NoError(t, err)
	return absPath
}

// fixtureRow builds a source row for year with every indicator set to value.
func fixtureRow(year string, value string) []string {
	row := make([]string, len(schema))
	row[0] = year
	for i := 1; i < len(row); i++ {
		row[i] = value
	}
	return row
}

// fixtureCSV renders header and rows as CSV text.
func fixtureCSV(t *testing.T, header []string, rows ...[]string) string {
	t.Helper()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.Write(header))
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return buf.String()
}

func prepareFixture(t *testing.T, rows ...[]string) (*Table, error) {
	t.Helper()
	return Prepare(strings.NewReader(fixtureCSV(t, SourceHeaders(), rows...)))
}
