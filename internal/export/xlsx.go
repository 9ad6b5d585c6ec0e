// Package export writes the prepared indicator table as an XLSX workbook.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dashboard.nigeriaindicators.org/internal/indicators"
)

const (
	SheetName   = "Indicators"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileName    = "nigeria_indicators.xlsx"
)

// WriteXLSX writes one header row (Year followed by the indicator display
// names) and one row per record. Year is stored as text and missing values
// are left as empty cells.
func WriteXLSX(w io.Writer, table *indicators.Table) error {
	return writeSheet(w, table, SheetName)
}

func writeSheet(w io.Writer, table *indicators.Table, sheet string) error {
	f := excelize.NewFile()
	defer f.Close() // nolint

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := append([]string{indicators.YearColumn}, table.Indicators()...)
	for col, name := range header {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("resolving header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, r := range table.Records() {
		row := i + 2
		if err := setCell(f, sheet, 1, row, strconv.FormatInt(r.Year, 10)); err != nil {
			return err
		}
		for j, v := range r.Values {
			if indicators.IsMissing(v) {
				continue
			}
			if err := setCell(f, sheet, j+2, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolving cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("setting cell %s: %w", cell, err)
	}
	return nil
}
