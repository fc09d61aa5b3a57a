package dataprocessing

// RevenueMatrix is the room × month revenue table. A cell with no observation
// stays absent rather than zero: "no stay" and "$0 revenue" are different
// facts and the spreadsheet shows the former as an empty cell.
type RevenueMatrix struct {
	rooms  []int
	months []string
	cells  map[int]map[string]float64
}

// NewRevenueMatrix creates a matrix over the property's room universe.
func NewRevenueMatrix(rooms []int, months []string) *RevenueMatrix {
	return &RevenueMatrix{
		rooms:  append([]int(nil), rooms...),
		months: append([]string(nil), months...),
		cells:  make(map[int]map[string]float64),
	}
}

// Rooms returns the matrix row universe in layout order.
func (m *RevenueMatrix) Rooms() []int { return m.rooms }

// Months returns the canonical month column order.
func (m *RevenueMatrix) Months() []string { return m.months }

// Set assigns a cell.
func (m *RevenueMatrix) Set(room int, month string, v float64) {
	row, ok := m.cells[room]
	if !ok {
		row = make(map[string]float64, len(m.months))
		m.cells[room] = row
	}
	row[month] = v
}

// Value returns the cell value and whether it was ever observed.
func (m *RevenueMatrix) Value(room int, month string) (float64, bool) {
	v, ok := m.cells[room][month]
	return v, ok
}

// YearlyTotal sums the room's month cells, skipping missing ones.
func (m *RevenueMatrix) YearlyTotal(room int) float64 {
	var total float64
	for _, month := range m.months {
		if v, ok := m.cells[room][month]; ok {
			total += v
		}
	}
	return total
}

// BookingMatrix is the room × month booked-nights table. Cells default to
// zero for any room/month no report mentioned.
type BookingMatrix struct {
	rooms  []int
	months []string
	cells  map[int]map[string]int
}

// NewBookingMatrix creates a matrix over the property's room universe.
func NewBookingMatrix(rooms []int, months []string) *BookingMatrix {
	return &BookingMatrix{
		rooms:  append([]int(nil), rooms...),
		months: append([]string(nil), months...),
		cells:  make(map[int]map[string]int),
	}
}

// Rooms returns the matrix row universe in layout order.
func (m *BookingMatrix) Rooms() []int { return m.rooms }

// Months returns the canonical month column order.
func (m *BookingMatrix) Months() []string { return m.months }

// Set assigns a cell.
func (m *BookingMatrix) Set(room int, month string, v int) {
	row, ok := m.cells[room]
	if !ok {
		row = make(map[string]int, len(m.months))
		m.cells[room] = row
	}
	row[month] = v
}

// Value returns the cell value, zero when never observed.
func (m *BookingMatrix) Value(room int, month string) int {
	return m.cells[room][month]
}

// YearlyTotal sums the room's month cells.
func (m *BookingMatrix) YearlyTotal(room int) int {
	var total int
	for _, month := range m.months {
		total += m.cells[room][month]
	}
	return total
}
