package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriterWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit", "pdfData.csv")
	table := Table{
		Name: "pdfData",
		Columns: []Column{
			{Name: "Room No.", Kind: KindInteger, Cells: []interface{}{101, 102}},
			{Name: "Month", Kind: KindGeneric, Cells: []interface{}{"January; February", "March"}},
			{Name: "Total Room Revenue", Kind: KindAccounting, Cells: []interface{}{250.5, nil}},
		},
	}

	writer := NewCSVWriter(testLogger())
	require.NoError(t, writer.WriteTable(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	bom := []byte{0xEF, 0xBB, 0xBF}
	require.True(t, bytes.HasPrefix(data, bom), "file should start with a UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Room No.", "Month", "Total Room Revenue"}, records[0])
	assert.Equal(t, []string{"101", "January; February", "250.50"}, records[1])
	assert.Equal(t, []string{"102", "March", ""}, records[2])
}
