// Package export writes a loaded collection to CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/five82/pokex/internal/dex"
)

// SheetName is the worksheet XLSX exports write to.
const SheetName = "Pokedex"

// Write picks the format from path's extension (.csv or .xlsx).
func Write(path string, records []dex.Record) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return writeCSV(path, records)
	case ".xlsx":
		return writeXLSX(path, records)
	default:
		return fmt.Errorf("unsupported export format %q (want .csv or .xlsx)", ext)
	}
}

// statColumns lists stat names in first-seen order across records.
func statColumns(records []dex.Record) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range records {
		for _, st := range rec.Stats {
			if !seen[st.Name] {
				seen[st.Name] = true
				names = append(names, st.Name)
			}
		}
	}
	return names
}

// Header returns the column names for records.
func Header(records []dex.Record) []string {
	header := []string{"id", "name", "types", "height_m", "weight_kg"}
	header = append(header, statColumns(records)...)
	return append(header, "abilities", "image")
}

// row builds one record's cells. Numbers stay numeric so spreadsheets can
// sort them; CSV stringifies them with %v.
func row(rec dex.Record, stats []string) []any {
	values := make(map[string]int, len(rec.Stats))
	for _, st := range rec.Stats {
		values[st.Name] = st.Value
	}
	cells := []any{
		rec.ID,
		rec.Name,
		strings.Join(rec.Types, "/"),
		rec.HeightMeters(),
		rec.WeightKilograms(),
	}
	for _, name := range stats {
		if v, ok := values[name]; ok {
			cells = append(cells, v)
		} else {
			cells = append(cells, "")
		}
	}
	return append(cells, strings.Join(rec.Abilities, ", "), rec.Image)
}

func writeCSV(path string, records []dex.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Header(records)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	stats := statColumns(records)
	for _, rec := range records {
		cells := row(rec, stats)
		line := make([]string, len(cells))
		for i, c := range cells {
			line[i] = fmt.Sprint(c)
		}
		if err := w.Write(line); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	return nil
}

func writeXLSX(path string, records []dex.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := Header(records)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := sw.SetRow("A1", headerCells); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	stats := statColumns(records)
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := sw.SetRow(cell, row(rec, stats)); err != nil {
			return fmt.Errorf("write row %d: %w", rec.ID, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save export: %w", err)
	}
	return nil
}
