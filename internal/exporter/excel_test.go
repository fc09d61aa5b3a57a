package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// readSheet loads a written workbook back as raw rows.
func readSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return rows
}

func TestExcelWriterWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "roomRevenue.xlsx")
	table := Table{
		Name: "roomRevenue",
		Columns: []Column{
			{Name: "Room No.", Kind: KindInteger, Cells: []interface{}{101, 102}},
			{Name: "January", Kind: KindAccounting, Cells: []interface{}{float64(100), nil}},
			{Name: "Yearly Total", Kind: KindAccounting, Cells: []interface{}{float64(100), float64(0)}},
		},
	}

	writer := NewExcelWriter(testLogger())
	require.NoError(t, writer.WriteTable(path, table))

	rows := readSheet(t, path, "roomRevenue")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Room No.", "January", "Yearly Total"}, rows[0])
	assert.Equal(t, "101", rows[1][0])
	assert.Equal(t, "100", rows[1][1])
	// Room 102 has no January observation, so the cell stays unset.
	require.GreaterOrEqual(t, len(rows[2]), 1)
	assert.Equal(t, "102", rows[2][0])
}

func TestExcelWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfData.xlsx")
	writer := NewExcelWriter(testLogger())

	first := Table{
		Name: "pdfData",
		Columns: []Column{
			{Name: "Room No.", Kind: KindInteger, Cells: []interface{}{101}},
			{Name: "Month", Kind: KindGeneric, Cells: []interface{}{"January"}},
		},
	}
	require.NoError(t, writer.WriteTable(path, first))

	second := Table{
		Name: "pdfData",
		Columns: []Column{
			{Name: "Room No.", Kind: KindInteger, Cells: []interface{}{201}},
			{Name: "Month", Kind: KindGeneric, Cells: []interface{}{"February"}},
		},
	}
	require.NoError(t, writer.WriteTable(path, second))

	rows := readSheet(t, path, "pdfData")
	require.Len(t, rows, 2)
	assert.Equal(t, "201", rows[1][0])
	assert.Equal(t, "February", rows[1][1])
}
