package exporter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteMatrixTable writes a matrix table, reconciling with any spreadsheet
// already on disk for the same year. Month data arrives incrementally, so a
// column that is already populated in the existing file must survive a rerun
// that computed different values for it.
func (w *ExcelWriter) WriteMatrixTable(path string, table Table) error {
	merged, err := w.reconcile(path, table)
	if err != nil {
		return err
	}
	recomputeYearlyTotal(&merged)
	return w.WriteTable(path, merged)
}

// reconcile folds an existing spreadsheet into the computed table. For each
// month column that differs, the computed values win only when the existing
// column is entirely zero (never populated); otherwise the existing column is
// kept untouched. The trailing total column is ignored here and recomputed
// afterwards.
func (w *ExcelWriter) reconcile(path string, table Table) (Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return table, nil
	}

	existing, err := w.readColumns(path, table.Name)
	if err != nil {
		w.logger.Warn("existing workbook unreadable, overwriting",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return table, nil
	}

	indexCol := table.Columns[0]
	for i := 1; i < len(table.Columns)-1; i++ {
		col := &table.Columns[i]
		old, ok := existing.column(col.Name, indexCol, col.Kind)
		if !ok {
			continue
		}
		if columnsEqual(col.Cells, old) {
			continue
		}
		if allZero(old) {
			continue
		}
		w.logger.Debug("preserving populated column",
			slog.String("path", path),
			slog.String("column", col.Name))
		col.Cells = old
	}

	return table, nil
}

// existingSheet holds a previously written sheet, indexed by header name and
// room number.
type existingSheet struct {
	headers map[string]int
	rows    map[string][]string
}

func (w *ExcelWriter) readColumns(path, sheet string) (*existingSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// Raw values: the accounting number format would otherwise come back as
	// display text.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	s := &existingSheet{
		headers: make(map[string]int, len(rows[0])),
		rows:    make(map[string][]string, len(rows)-1),
	}
	for i, h := range rows[0] {
		s.headers[strings.TrimSpace(h)] = i
	}
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		s.rows[strings.TrimSpace(row[0])] = row
	}
	return s, nil
}

// column extracts one existing column aligned to the computed room index.
// Rooms absent from the existing file yield nil cells.
func (s *existingSheet) column(name string, index Column, kind ColumnKind) ([]interface{}, bool) {
	colIdx, ok := s.headers[name]
	if !ok {
		return nil, false
	}
	cells := make([]interface{}, 0, len(index.Cells))
	for _, room := range index.Cells {
		row, ok := s.rows[cellString(room)]
		if !ok || colIdx >= len(row) {
			cells = append(cells, nil)
			continue
		}
		cells = append(cells, parseCell(row[colIdx], kind))
	}
	return cells, true
}

// parseCell converts a stored spreadsheet string back into the column's cell
// type. Unparseable or empty text maps to a missing cell.
func parseCell(s string, kind ColumnKind) interface{} {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	switch kind {
	case KindInteger:
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return nil
	case KindAccounting:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return nil
	default:
		return s
	}
}

func columnsEqual(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cellString(a[i]) != cellString(b[i]) {
			return false
		}
	}
	return true
}

// allZero reports whether a column was never populated: every cell missing or
// numerically zero. A column of true zeros is indistinguishable from an
// unpopulated one here, so real zero data gets replaced on a rerun.
func allZero(cells []interface{}) bool {
	for _, c := range cells {
		switch v := c.(type) {
		case nil:
		case int:
			if v != 0 {
				return false
			}
		case float64:
			if v != 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// recomputeYearlyTotal rebuilds the trailing total column as the row-wise sum
// of the final month columns, missing cells contributing nothing.
func recomputeYearlyTotal(table *Table) {
	if len(table.Columns) < 2 {
		return
	}
	totals := &table.Columns[len(table.Columns)-1]
	n := len(table.Columns[0].Cells)
	totals.Cells = make([]interface{}, n)

	for row := 0; row < n; row++ {
		var sum float64
		for i := 1; i < len(table.Columns)-1; i++ {
			if row >= len(table.Columns[i].Cells) {
				continue
			}
			switch v := table.Columns[i].Cells[row].(type) {
			case int:
				sum += float64(v)
			case float64:
				sum += v
			}
		}
		if totals.Kind == KindInteger {
			totals.Cells[row] = int(sum)
		} else {
			totals.Cells[row] = sum
		}
	}
}
