package exporter

import (
	"strings"

	"roomledger/internal/config"
	"roomledger/internal/dataprocessing"
)

// Column is one named output column. A nil cell exports as an empty
// spreadsheet cell.
type Column struct {
	Name  string
	Kind  ColumnKind
	Cells []interface{}
}

// Table is a rectangular sheet: Columns[0] is the row index (room number),
// the header row comes first.
type Table struct {
	Name    string
	Columns []Column
}

// listSeparator joins per-month value lists in the detail export.
const listSeparator = "; "

// DetailSheet converts the audit table to its sheet form: room, month list,
// then each raw metric's value list and total.
func DetailSheet(d dataprocessing.DetailTable) Table {
	n := len(d.Rows)

	rooms := Column{Name: d.RoomHeader, Kind: KindInteger, Cells: make([]interface{}, 0, n)}
	months := Column{Name: d.MonthHeader, Kind: KindGeneric, Cells: make([]interface{}, 0, n)}
	for _, row := range d.Rows {
		rooms.Cells = append(rooms.Cells, row.Room)
		months.Cells = append(months.Cells, strings.Join(row.Months, listSeparator))
	}

	table := Table{Name: "pdfData", Columns: []Column{rooms, months}}

	for _, name := range d.MetricNames {
		kind := d.Kinds[name]
		values := Column{Name: name, Kind: KindGeneric, Cells: make([]interface{}, 0, n)}
		totals := Column{Name: "Total " + name, Kind: totalKind(kind), Cells: make([]interface{}, 0, n)}
		for _, row := range d.Rows {
			series, ok := rowMetric(row, name)
			if !ok {
				values.Cells = append(values.Cells, nil)
				totals.Cells = append(totals.Cells, nil)
				continue
			}
			values.Cells = append(values.Cells, joinSeries(series))
			totals.Cells = append(totals.Cells, totalCell(series))
		}
		table.Columns = append(table.Columns, values, totals)
	}

	return table
}

// RevenueSheet converts the revenue matrix: twelve month columns in
// accounting format plus the recomputed yearly total. Unobserved cells stay
// empty.
func RevenueSheet(roomHeader string, m *dataprocessing.RevenueMatrix) Table {
	rooms := m.Rooms()
	table := Table{Name: "roomRevenue"}
	table.Columns = append(table.Columns, roomIndexColumn(roomHeader, rooms))

	for _, month := range m.Months() {
		col := Column{Name: month, Kind: KindAccounting, Cells: make([]interface{}, 0, len(rooms))}
		for _, room := range rooms {
			if v, ok := m.Value(room, month); ok {
				col.Cells = append(col.Cells, v)
			} else {
				col.Cells = append(col.Cells, nil)
			}
		}
		table.Columns = append(table.Columns, col)
	}

	totals := Column{Name: config.YearlyTotalColumn, Kind: KindAccounting, Cells: make([]interface{}, 0, len(rooms))}
	for _, room := range rooms {
		totals.Cells = append(totals.Cells, m.YearlyTotal(room))
	}
	table.Columns = append(table.Columns, totals)

	return table
}

// BookingSheet converts the booking matrix: integer month columns defaulting
// to zero plus the yearly total.
func BookingSheet(roomHeader string, m *dataprocessing.BookingMatrix) Table {
	rooms := m.Rooms()
	table := Table{Name: "roomBooking"}
	table.Columns = append(table.Columns, roomIndexColumn(roomHeader, rooms))

	for _, month := range m.Months() {
		col := Column{Name: month, Kind: KindInteger, Cells: make([]interface{}, 0, len(rooms))}
		for _, room := range rooms {
			col.Cells = append(col.Cells, m.Value(room, month))
		}
		table.Columns = append(table.Columns, col)
	}

	totals := Column{Name: config.YearlyTotalColumn, Kind: KindInteger, Cells: make([]interface{}, 0, len(rooms))}
	for _, room := range rooms {
		totals.Cells = append(totals.Cells, m.YearlyTotal(room))
	}
	table.Columns = append(table.Columns, totals)

	return table
}

func roomIndexColumn(name string, rooms []int) Column {
	col := Column{Name: name, Kind: KindInteger, Cells: make([]interface{}, 0, len(rooms))}
	for _, room := range rooms {
		col.Cells = append(col.Cells, room)
	}
	return col
}

func rowMetric(row dataprocessing.DetailRow, name string) (dataprocessing.MetricSeries, bool) {
	for _, m := range row.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return dataprocessing.MetricSeries{}, false
}

func joinSeries(series dataprocessing.MetricSeries) string {
	parts := make([]string, 0, len(series.Values))
	for _, v := range series.Values {
		if series.Kind == dataprocessing.KindInt {
			parts = append(parts, formatInt(int(v)))
		} else {
			parts = append(parts, formatFloat(v))
		}
	}
	return strings.Join(parts, listSeparator)
}

func totalCell(series dataprocessing.MetricSeries) interface{} {
	if series.Kind == dataprocessing.KindInt {
		return int(series.Total)
	}
	return series.Total
}

func totalKind(kind dataprocessing.MetricKind) ColumnKind {
	if kind == dataprocessing.KindInt {
		return KindInteger
	}
	return KindAccounting
}
