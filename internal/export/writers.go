package export

import (
	"fmt"
	"io"
	"strconv"

	"Conecyl/internal/ccs"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const SheetName = "specimens"

// WriteCSV writes one line per catalog entry with a header line.
func WriteCSV(w io.Writer, c *ccs.Catalog) error {
	rows, err := Rows(c)
	if err != nil {
		return err
	}
	return gocsv.Marshal(rows, w)
}

// WriteXLSX writes the catalog as a single-sheet workbook. Numeric cells are
// stored as numbers.
func WriteXLSX(w io.Writer, c *ccs.Catalog) error {
	rows, err := Rows(c)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.Values()
		out := make([]any, len(values))
		for j, v := range values {
			out[j] = cellValue(v)
		}
		if err := f.SetSheetRow(SheetName, cell, &out); err != nil {
			return fmt.Errorf("row %s: %w", row.Name, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "B", 30); err != nil {
		return err
	}
	return f.Write(w)
}

func cellValue(v string) any {
	if v == "" {
		return nil
	}
	if x, err := strconv.ParseFloat(v, 64); err == nil {
		return x
	}
	return v
}
