package exporter

import "fmt"

// ColumnKind selects the spreadsheet number format for a column.
type ColumnKind int

const (
	KindGeneric ColumnKind = iota
	KindInteger
	KindAccounting
)

// Built-in number format IDs: 0 generic, 1 integer, 44 accounting with two
// decimals.
func numberFormat(kind ColumnKind) int {
	switch kind {
	case KindInteger:
		return 1
	case KindAccounting:
		return 44
	default:
		return 0
	}
}

// formatFloat renders a float with exactly 2 decimal places, so 13.4 exports
// as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt renders an integer value.
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// cellString renders any cell value for width measurement and CSV output.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return formatInt(val)
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// columnWidth returns the display width for a column: the widest of header
// and cells, padded.
func columnWidth(col Column) float64 {
	width := len(col.Name)
	for _, cell := range col.Cells {
		if l := len(cellString(cell)); l > width {
			width = l
		}
	}
	return float64(width + 5)
}
