package domain

// RawPage is the table extracted from one physical PDF page, exactly as the
// extraction library handed it back: a header row plus cell rows of strings.
// Column headers are layout dependent and may include spurious artifacts
// ("Unnamed: N" style fillers); columns are positionally significant.
type RawPage struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the page carried no table rows at all.
func (p RawPage) Empty() bool {
	return len(p.Rows) == 0
}

// Cell returns the cell at (row, col), or "" when the row is ragged and the
// column does not exist.
func (p RawPage) Cell(row, col int) string {
	if row < 0 || row >= len(p.Rows) {
		return ""
	}
	r := p.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// RoomMonthRecord documents the semantic unit the pipeline reconstructs: one
// room's figures for one month. The processing stages carry these values as
// per-block month/metric series; this struct is the contract shape of a
// single (room, month) cell. Missing or non-numeric source cells carry the
// -1 sentinel rather than zero.
type RoomMonthRecord struct {
	RoomNumber int
	Month      string
	Arrivals   int
	Nights     int
	Revenue    float64
	ADR        float64
}
