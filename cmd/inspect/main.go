// Command inspect prints the prepared indicator table and the dashboard
// views for one selection, and can export the table as XLSX.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/export"
	"dashboard.nigeriaindicators.org/internal/indicators"
	"dashboard.nigeriaindicators.org/internal/logging"
)

type options struct {
	dataPath  string
	start     int64
	end       int64
	indicator string
	x         string
	y         string
	xlsxPath  string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.dataPath, "data", "data/nigeria_indicators_data.csv", "Path to the indicators CSV file")
	fs.Int64Var(&opts.start, "start", 0, "Start year (default: earliest default year)")
	fs.Int64Var(&opts.end, "end", 0, "End year (default: latest default year)")
	fs.StringVar(&opts.indicator, "indicator", "", "Indicator for the trend and comparison views")
	fs.StringVar(&opts.x, "x", "", "First indicator of the relationship view")
	fs.StringVar(&opts.y, "y", "", "Second indicator of the relationship view")
	fs.StringVar(&opts.xlsxPath, "xlsx", "", "Write the prepared table to this XLSX file")
	err := fs.Parse(args)
	return opts, err
}

// selection overlays the flags that were set on the default selection.
func (opts options) selection(table *indicators.Table) analysis.Selection {
	sel := analysis.DefaultSelection(table)
	if opts.start != 0 {
		sel.Start = opts.start
	}
	if opts.end != 0 {
		sel.End = opts.end
	}
	if opts.indicator != "" {
		sel.Indicator = opts.indicator
	}
	if opts.x != "" {
		sel.X = opts.x
	}
	if opts.y != "" {
		sel.Y = opts.y
	}
	return sel
}

func formatValue(v float64) string {
	return analysis.FormatLargeNumbers(v)
}

func formatNormalized(v float64) string {
	if indicators.IsMissing(v) {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func printTable(w io.Writer, table *indicators.Table) {
	header := append([]string{indicators.YearColumn}, table.Indicators()...)
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	for _, r := range table.Records() {
		row := []string{strconv.FormatInt(r.Year, 10)}
		for _, v := range r.Values {
			row = append(row, formatValue(v))
		}
		tw.Append(row)
	}
	tw.Render()
}

func printTrend(w io.Writer, view analysis.TrendView) {
	heading := color.New(color.FgYellow)
	heading.Fprintf(w, "\n%s Trend (%d-%d)\n", view.Indicator, view.Start, view.End)
	if view.Empty {
		color.New(color.FgRed).Fprintln(w, analysis.NoDataMessage)
		return
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{indicators.YearColumn, view.Indicator})
	for _, p := range view.Points {
		tw.Append([]string{strconv.FormatInt(p.Year, 10), formatValue(p.Value)})
	}
	tw.Render()
}

func printComparison(w io.Writer, view analysis.ComparisonView) {
	heading := color.New(color.FgYellow)
	heading.Fprintf(w, "\n%s Comparison (%d vs %d)\n", view.Indicator, view.Start.Year, view.End.Year)

	change := "N/A"
	if view.HasChange {
		change = view.ChangeLabel
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Year", "Value", "Change"})
	tw.Append([]string{strconv.FormatInt(view.Start.Year, 10), view.Start.Label, ""})
	tw.Append([]string{strconv.FormatInt(view.End.Year, 10), view.End.Label, change})
	tw.Render()
}

func printRelationship(w io.Writer, view analysis.RelationshipView) {
	heading := color.New(color.FgYellow)
	heading.Fprintf(w, "\n%s vs %s (Normalized)\n", view.X.Indicator, view.Y.Indicator)
	if view.Empty {
		color.New(color.FgRed).Fprintln(w, analysis.NoDataMessage)
		return
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{indicators.YearColumn, view.X.Indicator, view.Y.Indicator})
	for i, year := range view.Years {
		tw.Append([]string{
			strconv.FormatInt(year, 10),
			formatNormalized(view.X.Values[i]),
			formatNormalized(view.Y.Values[i]),
		})
	}
	tw.Render()
}

func printFieldErrors(w io.Writer, fieldErrors map[string][]string) {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	red := color.New(color.FgRed)
	for _, field := range fields {
		for _, msg := range fieldErrors[field] {
			red.Fprintf(w, "%s: %s\n", field, msg)
		}
	}
}

func writeXLSX(path string, table *indicators.Table, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close_xlsx")

	return export.WriteXLSX(f, table)
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return 2
	}

	logger := logging.NewStructuredLogger(stderr, slog.LevelWarn)

	manager, err := indicators.InitManager(indicators.Config{DataPath: opts.dataPath}, logger)
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	table, _ := manager.Table()

	color.New(color.FgCyan).Fprintln(stdout, "=== Nigeria Indicators ===")
	manager.PrintStatistics(stdout)

	sel := opts.selection(table)
	if fieldErrors := sel.Validate(table); len(fieldErrors) > 0 {
		printFieldErrors(stderr, fieldErrors)
		return 2
	}

	printTable(stdout, table.FilterYears(sel.Start, sel.End))
	printTrend(stdout, analysis.Trend(table, sel))
	printComparison(stdout, analysis.Compare(table, sel))
	printRelationship(stdout, analysis.Relationship(table, sel))

	if opts.xlsxPath != "" {
		if err := writeXLSX(opts.xlsxPath, table, logger); err != nil {
			color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		color.New(color.FgGreen).Fprintf(stdout, "\nWrote %s\n", opts.xlsxPath)
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
