package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomledger/internal/config"
)

func TestMatrixDefaults(t *testing.T) {
	revenue := NewRevenueMatrix([]int{101, 102}, config.MonthNames)
	bookings := NewBookingMatrix([]int{101, 102}, config.MonthNames)

	// Revenue distinguishes "no stay" from zero revenue; bookings do not.
	_, ok := revenue.Value(102, "January")
	assert.False(t, ok)
	assert.Equal(t, 0, bookings.Value(102, "January"))

	assert.Equal(t, float64(0), revenue.YearlyTotal(102))
	assert.Equal(t, 0, bookings.YearlyTotal(102))
}

func TestBuilderScattersObservations(t *testing.T) {
	table := NewYearTable(2023)
	table.Add(Observation{
		File:   "a.pdf",
		Room:   101,
		Months: []string{"January", "February"},
		Metrics: []MetricSeries{
			{Name: "No. of Arrivals", Kind: KindInt, Values: []float64{2, 3}, Total: 5},
			{Name: "Room Nights", Kind: KindInt, Values: []float64{2, 3}, Total: 5},
			{Name: "Room Revenue", Kind: KindFloat, Values: []float64{100, 150}, Total: 250},
			{Name: "ADR", Kind: KindFloat, Values: []float64{50, 50}, Total: 50},
		},
	})

	builder := NewBuilder(config.Default().Processing, []int{101, 1500}, testLogger())
	report := builder.Build(table)

	assert.Equal(t, 2023, report.Year)

	jan, ok := report.Revenue.Value(101, "January")
	require.True(t, ok)
	assert.Equal(t, float64(100), jan)
	feb, ok := report.Revenue.Value(101, "February")
	require.True(t, ok)
	assert.Equal(t, float64(150), feb)
	_, ok = report.Revenue.Value(101, "March")
	assert.False(t, ok)

	assert.Equal(t, 2, report.Bookings.Value(101, "January"))
	assert.Equal(t, 3, report.Bookings.Value(101, "February"))
	assert.Equal(t, 0, report.Bookings.Value(101, "March"))

	// Room 1500 appears in the layout but no report mentioned it.
	for _, month := range config.MonthNames {
		_, ok := report.Revenue.Value(1500, month)
		assert.False(t, ok)
		assert.Equal(t, 0, report.Bookings.Value(1500, month))
	}

	require.Len(t, report.Detail.Rows, 1)
	assert.Equal(t, 101, report.Detail.Rows[0].Room)
	assert.Equal(t, "Room No.", report.Detail.RoomHeader)
	assert.Equal(t, []string{"No. of Arrivals", "Room Nights", "Room Revenue", "ADR"}, report.Detail.MetricNames)
}

func TestBuilderFallsBackToRolePosition(t *testing.T) {
	// A report vintage that renamed the revenue column still scatters into
	// the revenue matrix via its fixed role position.
	table := NewYearTable(2023)
	table.Add(Observation{
		File:   "a.pdf",
		Room:   101,
		Months: []string{"January"},
		Metrics: []MetricSeries{
			{Name: "Arrivals", Kind: KindInt, Values: []float64{2}, Total: 2},
			{Name: "Nights", Kind: KindInt, Values: []float64{4}, Total: 4},
			{Name: "Net Revenue", Kind: KindFloat, Values: []float64{300}, Total: 300},
			{Name: "Avg Rate", Kind: KindFloat, Values: []float64{75}, Total: 75},
		},
	})

	builder := NewBuilder(config.Default().Processing, []int{101}, testLogger())
	report := builder.Build(table)

	jan, ok := report.Revenue.Value(101, "January")
	require.True(t, ok)
	assert.Equal(t, float64(300), jan)
	assert.Equal(t, 4, report.Bookings.Value(101, "January"))
}

// Two single-page reports for the same room and year flow through batching,
// merge and build into one consolidated row.
func TestEndToEndTwoReports(t *testing.T) {
	source := newFakeSource()
	source.addFile("jan.pdf", firstPageFor(2023), reportPage(true, roomBlock{
		room:     101,
		months:   []string{"January"},
		arrivals: []int{1},
		nights:   []int{2},
		revenue:  []float64{100},
		adr:      []float64{50},
	}))
	source.addFile("feb.pdf", firstPageFor(2023), reportPage(true, roomBlock{
		room:     101,
		months:   []string{"February"},
		arrivals: []int{1},
		nights:   []int{3},
		revenue:  []float64{150},
		adr:      []float64{50},
	}))

	cfg := config.Default().Processing
	c := NewCoordinator(cfg, source, testLogger())
	tables, err := c.Run(context.Background(), []string{"jan.pdf", "feb.pdf"})
	require.NoError(t, err)
	require.Equal(t, []int{2023}, tables.Years())

	builder := NewBuilder(cfg, config.Default().Property.RoomNumbers(), testLogger())
	report := builder.Build(tables.GetOrInsert(2023))

	jan, ok := report.Revenue.Value(101, "January")
	require.True(t, ok)
	assert.Equal(t, float64(100), jan)
	feb, ok := report.Revenue.Value(101, "February")
	require.True(t, ok)
	assert.Equal(t, float64(150), feb)
	for _, month := range config.MonthNames[2:] {
		_, ok := report.Revenue.Value(101, month)
		assert.False(t, ok, "month %s should stay missing", month)
	}
	assert.Equal(t, float64(250), report.Revenue.YearlyTotal(101))

	assert.Equal(t, 2, report.Bookings.Value(101, "January"))
	assert.Equal(t, 3, report.Bookings.Value(101, "February"))
	for _, month := range config.MonthNames[2:] {
		assert.Equal(t, 0, report.Bookings.Value(101, month))
	}
	assert.Equal(t, 5, report.Bookings.YearlyTotal(101))
}
