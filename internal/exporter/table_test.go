package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomledger/internal/config"
	"roomledger/internal/dataprocessing"
)

func testRevenueMatrix() *dataprocessing.RevenueMatrix {
	m := dataprocessing.NewRevenueMatrix([]int{101, 102}, config.MonthNames)
	m.Set(101, "January", 100)
	m.Set(101, "February", 150)
	return m
}

func testBookingMatrix() *dataprocessing.BookingMatrix {
	m := dataprocessing.NewBookingMatrix([]int{101, 102}, config.MonthNames)
	m.Set(101, "January", 2)
	m.Set(101, "February", 3)
	return m
}

func TestRevenueSheet(t *testing.T) {
	table := RevenueSheet("Room No.", testRevenueMatrix())

	assert.Equal(t, "roomRevenue", table.Name)
	require.Len(t, table.Columns, 14)
	assert.Equal(t, "Room No.", table.Columns[0].Name)
	assert.Equal(t, KindInteger, table.Columns[0].Kind)
	assert.Equal(t, []interface{}{101, 102}, table.Columns[0].Cells)

	jan := table.Columns[1]
	assert.Equal(t, "January", jan.Name)
	assert.Equal(t, KindAccounting, jan.Kind)
	assert.Equal(t, []interface{}{float64(100), nil}, jan.Cells)

	march := table.Columns[3]
	assert.Nil(t, march.Cells[0], "unobserved revenue cell stays empty")

	totals := table.Columns[13]
	assert.Equal(t, config.YearlyTotalColumn, totals.Name)
	assert.Equal(t, []interface{}{float64(250), float64(0)}, totals.Cells)
}

func TestBookingSheet(t *testing.T) {
	table := BookingSheet("Room No.", testBookingMatrix())

	assert.Equal(t, "roomBooking", table.Name)
	require.Len(t, table.Columns, 14)

	jan := table.Columns[1]
	assert.Equal(t, KindInteger, jan.Kind)
	assert.Equal(t, []interface{}{2, 0}, jan.Cells)

	march := table.Columns[3]
	assert.Equal(t, 0, march.Cells[0], "unobserved booking cell defaults to zero")

	totals := table.Columns[13]
	assert.Equal(t, []interface{}{5, 0}, totals.Cells)
}

func TestDetailSheet(t *testing.T) {
	detail := dataprocessing.DetailTable{
		RoomHeader:  "Room No.",
		MonthHeader: "Month",
		MetricNames: []string{"Room Nights", "Room Revenue"},
		Kinds: map[string]dataprocessing.MetricKind{
			"Room Nights":  dataprocessing.KindInt,
			"Room Revenue": dataprocessing.KindFloat,
		},
		Rows: []dataprocessing.DetailRow{
			{
				Room:   101,
				Months: []string{"January", "February"},
				Metrics: []dataprocessing.MetricSeries{
					{Name: "Room Nights", Kind: dataprocessing.KindInt, Values: []float64{2, 3}, Total: 5},
					{Name: "Room Revenue", Kind: dataprocessing.KindFloat, Values: []float64{100, 150.5}, Total: 250.5},
				},
			},
		},
	}

	table := DetailSheet(detail)

	assert.Equal(t, "pdfData", table.Name)
	require.Len(t, table.Columns, 6)
	assert.Equal(t, []interface{}{101}, table.Columns[0].Cells)
	assert.Equal(t, []interface{}{"January; February"}, table.Columns[1].Cells)

	nights := table.Columns[2]
	assert.Equal(t, "Room Nights", nights.Name)
	assert.Equal(t, []interface{}{"2; 3"}, nights.Cells)

	nightTotals := table.Columns[3]
	assert.Equal(t, "Total Room Nights", nightTotals.Name)
	assert.Equal(t, KindInteger, nightTotals.Kind)
	assert.Equal(t, []interface{}{5}, nightTotals.Cells)

	revenue := table.Columns[4]
	assert.Equal(t, []interface{}{"100.00; 150.50"}, revenue.Cells)

	revenueTotals := table.Columns[5]
	assert.Equal(t, KindAccounting, revenueTotals.Kind)
	assert.Equal(t, []interface{}{250.5}, revenueTotals.Cells)
}

func TestColumnWidth(t *testing.T) {
	col := Column{
		Name:  "January",
		Cells: []interface{}{float64(1234567.89), nil, "x"},
	}
	// Widest content is "1234567.89" (10 chars) plus padding.
	assert.Equal(t, float64(15), columnWidth(col))
}
