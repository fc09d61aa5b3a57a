package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelWriter writes Tables as .xlsx workbooks, one sheet per file.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates an Excel writer.
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteTable saves the table to path, overwriting any existing file. The
// sheet is named after the table and each column gets its number format and
// a width fitted to its content.
func (w *ExcelWriter) WriteTable(path string, table Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", table.Name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for colIdx, col := range table.Columns {
		headerCell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return fmt.Errorf("header cell for column %d: %w", colIdx, err)
		}
		if err := f.SetCellValue(table.Name, headerCell, col.Name); err != nil {
			return fmt.Errorf("write header %q: %w", col.Name, err)
		}

		for rowIdx, cell := range col.Cells {
			if cell == nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("cell name (%d,%d): %w", colIdx, rowIdx, err)
			}
			if err := f.SetCellValue(table.Name, name, cell); err != nil {
				return fmt.Errorf("write cell %s: %w", name, err)
			}
		}

		if err := w.styleColumn(f, table.Name, colIdx, col); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	w.logger.Debug("wrote workbook",
		slog.String("path", path),
		slog.Int("columns", len(table.Columns)))

	return nil
}

func (w *ExcelWriter) styleColumn(f *excelize.File, sheet string, colIdx int, col Column) error {
	letter, err := excelize.ColumnNumberToName(colIdx + 1)
	if err != nil {
		return fmt.Errorf("column letter %d: %w", colIdx, err)
	}

	if fmtID := numberFormat(col.Kind); fmtID != 0 {
		styleID, err := f.NewStyle(&excelize.Style{NumFmt: fmtID})
		if err != nil {
			return fmt.Errorf("style for column %s: %w", letter, err)
		}
		if err := f.SetColStyle(sheet, letter, styleID); err != nil {
			return fmt.Errorf("apply style to column %s: %w", letter, err)
		}
	}

	if err := f.SetColWidth(sheet, letter, letter, columnWidth(col)); err != nil {
		return fmt.Errorf("set width of column %s: %w", letter, err)
	}
	return nil
}
