package dataprocessing

import (
	"log/slog"

	"roomledger/internal/config"
)

// DetailRow is one audit row: a room observation with its month list and raw
// metric series, exactly as decoded from one report block.
type DetailRow struct {
	Room    int
	Months  []string
	Metrics []MetricSeries
}

// DetailTable is the per-year audit/debug export: one row per decoded room
// observation, columns named by the raw report headers.
type DetailTable struct {
	RoomHeader  string
	MonthHeader string
	MetricNames []string
	Kinds       map[string]MetricKind
	Rows        []DetailRow
}

// YearReport bundles the three reporting tables derived for one year.
type YearReport struct {
	Year     int
	Detail   DetailTable
	Revenue  *RevenueMatrix
	Bookings *BookingMatrix
}

// Builder derives the reporting tables from a finalized YearTable. It only
// reads the table; by the time it runs, the coordinator's concurrent phase
// is over and nothing mutates the input.
type Builder struct {
	cfg    config.ProcessingConfig
	rooms  []int
	months []string
	logger *slog.Logger
}

// NewBuilder creates a builder for the given property room universe.
func NewBuilder(cfg config.ProcessingConfig, rooms []int, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		cfg:    cfg,
		rooms:  append([]int(nil), rooms...),
		months: config.MonthNames,
		logger: logger,
	}
}

// Build produces the detail table and both matrices for one year.
//
// The matrices' row universe is the configured property layout, observed or
// not. Repeated (room, month) observations reduce by scatter-assignment in
// provenance order, so the last file (by name) covering a cell wins
// deterministically, independent of batch completion order.
func (b *Builder) Build(t *YearTable) YearReport {
	detail := DetailTable{
		RoomHeader:  b.cfg.RoomColumn,
		MonthHeader: b.cfg.MonthColumn,
		MetricNames: t.MetricNames(),
		Kinds:       make(map[string]MetricKind),
	}
	for _, name := range detail.MetricNames {
		detail.Kinds[name] = t.MetricKindOf(name)
	}
	for _, room := range t.Rooms() {
		for _, obs := range t.Observations(room) {
			detail.Rows = append(detail.Rows, DetailRow{
				Room:    obs.Room,
				Months:  obs.Months,
				Metrics: obs.Metrics,
			})
		}
	}

	revenue := NewRevenueMatrix(b.rooms, b.months)
	bookings := NewBookingMatrix(b.rooms, b.months)

	for _, room := range b.rooms {
		for _, obs := range t.Observations(room) {
			rev := b.series(obs, b.cfg.RevenueColumn, 2)
			nights := b.series(obs, b.cfg.NightsColumn, 1)
			for i, month := range obs.Months {
				if i < len(rev.Values) {
					revenue.Set(room, month, rev.Values[i])
				}
				if i < len(nights.Values) {
					bookings.Set(room, month, int(nights.Values[i]))
				}
			}
		}
	}

	b.logger.Info("built reporting tables",
		slog.Int("year", t.Year),
		slog.Int("detail_rows", len(detail.Rows)),
		slog.Int("rooms", len(b.rooms)))

	return YearReport{
		Year:     t.Year,
		Detail:   detail,
		Revenue:  revenue,
		Bookings: bookings,
	}
}

// series finds a metric by its configured raw name, falling back to the
// fixed role position when a report vintage renamed the column.
func (b *Builder) series(obs Observation, name string, rolePos int) MetricSeries {
	if m, ok := obs.Metric(name); ok {
		return m
	}
	return obs.metricAt(rolePos)
}
