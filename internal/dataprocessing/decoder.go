package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"roomledger/internal/config"
	"roomledger/pkg/contracts/domain"
)

// columnRole enumerates the repeating report layout: each logical row carries
// a room number, a month list, and four metrics, in this fixed order. The
// column index for a role wraps modulo the page's column count, which is how
// the report's layout behaves when the extractor merges columns.
type columnRole int

const (
	roleRoom columnRole = iota
	roleMonth
	roleArrivals
	roleNights
	roleRevenue
	roleADR
)

var metricRoles = []struct {
	role columnRole
	kind MetricKind
}{
	{roleArrivals, KindInt},
	{roleNights, KindInt},
	{roleRevenue, KindFloat},
	{roleADR, KindFloat},
}

func columnForRole(role columnRole, nCols int) int {
	return int(role) % nCols
}

// spuriousColumn reports whether a header is a positional artifact of the
// extraction rather than a real report column.
func spuriousColumn(header string) bool {
	h := strings.TrimSpace(header)
	return h == "" || strings.HasPrefix(h, "Unnamed")
}

// PageDecoder reconstructs room/month observations from one raw page table.
//
// The physical layout decoded here: each logical row spans n sub-rows, where
// sub-row 0 holds the room number, sub-rows 1..n-2 hold one month each, and
// sub-row n-1 (when present) holds the row's totals. The block size n is
// inferred from the gap between the first two populated cells of the room
// column.
type PageDecoder struct {
	cfg    config.ProcessingConfig
	months map[string]struct{}
	logger *slog.Logger
}

// NewPageDecoder creates a decoder for the configured report layout.
func NewPageDecoder(cfg config.ProcessingConfig, logger *slog.Logger) *PageDecoder {
	if logger == nil {
		logger = slog.Default()
	}
	months := make(map[string]struct{}, len(config.MonthNames))
	for _, m := range config.MonthNames {
		months[m] = struct{}{}
	}
	return &PageDecoder{cfg: cfg, months: months, logger: logger}
}

// DecodePage decodes every room block on the page. lastPage marks the file's
// final page, whose trailing row is a document footer rather than data.
func (d *PageDecoder) DecodePage(file string, pageIndex int, page domain.RawPage, lastPage bool) ([]Observation, error) {
	table := dropSpuriousColumns(page)
	if table.Empty() || len(table.Headers) == 0 {
		return nil, nil
	}

	nCols := len(table.Headers)
	roomCol := columnForRole(roleRoom, nCols)
	monthCol := columnForRole(roleMonth, nCols)

	nSubRows, err := d.blockSize(table, roomCol)
	if err != nil {
		return nil, fmt.Errorf("page %d of %s: %w", pageIndex+1, file, err)
	}

	var observations []Observation
	block := 0
	for rowIdx := 0; rowIdx < len(table.Rows); rowIdx += nSubRows {
		// The last row of the last page is the document footer.
		if rowIdx == len(table.Rows)-1 && lastPage {
			break
		}

		obs, ok := d.decodeBlock(table, file, pageIndex, block, rowIdx, nSubRows, roomCol, monthCol)
		if ok {
			observations = append(observations, obs)
		}
		block++
	}

	return observations, nil
}

// blockSize infers the number of physical sub-rows per logical row from the
// first two populated cells of the room column. When the second populated
// cell does not exist (single trailing block on the final page), the page
// length minus the footer row stands in for it.
func (d *PageDecoder) blockSize(table domain.RawPage, roomCol int) (int, error) {
	first, second := -1, -1
	for i := range table.Rows {
		if NormalizeText(table.Cell(i, roomCol)) == "" {
			continue
		}
		if first == -1 {
			first = i
			continue
		}
		second = i
		break
	}
	if first == -1 {
		return 0, fmt.Errorf("room column has no populated rows")
	}
	if second == -1 {
		second = len(table.Rows) - 1
	}
	n := second - first
	if n <= 0 {
		return 0, fmt.Errorf("could not infer sub-row block size")
	}
	return n, nil
}

func (d *PageDecoder) decodeBlock(table domain.RawPage, file string, pageIndex, block, rowIdx, nSubRows, roomCol, monthCol int) (Observation, bool) {
	room := NormalizeInt(table.Cell(rowIdx, roomCol))
	if room == Sentinel {
		d.logger.Debug("skipping block without room number",
			slog.String("file", file),
			slog.Int("page", pageIndex+1),
			slog.Int("row", rowIdx))
		return Observation{}, false
	}

	// Month sub-rows sit between the room row and the total row. Entries
	// outside the canonical twelve are extraction noise and are dropped
	// together with their metric cells.
	var months []string
	var monthRows []int
	for r := rowIdx + 1; r < rowIdx+nSubRows-1 && r < len(table.Rows); r++ {
		month := NormalizeText(table.Cell(r, monthCol))
		if _, ok := d.months[month]; !ok {
			if month != "" {
				d.logger.Debug("dropping non-canonical month entry",
					slog.String("file", file),
					slog.Int("page", pageIndex+1),
					slog.String("month", month))
			}
			continue
		}
		months = append(months, month)
		monthRows = append(monthRows, r)
	}
	if len(months) == 0 {
		return Observation{}, false
	}

	totalRow := rowIdx + nSubRows - 1
	nCols := len(table.Headers)

	metrics := make([]MetricSeries, 0, len(metricRoles))
	for _, mr := range metricRoles {
		col := columnForRole(mr.role, nCols)
		series := MetricSeries{
			Name:   table.Headers[col],
			Kind:   mr.kind,
			Values: make([]float64, 0, len(monthRows)),
		}
		for _, r := range monthRows {
			series.Values = append(series.Values, normalizeByKind(table.Cell(r, col), mr.kind))
		}
		series.Total = d.blockTotal(table, totalRow, col, mr.kind, series.Values)
		metrics = append(metrics, series)
	}

	return Observation{
		File:    file,
		Page:    pageIndex,
		Block:   block,
		Room:    room,
		Months:  months,
		Metrics: metrics,
	}, true
}

// blockTotal returns the explicit total sub-row value, or the sum of the
// per-month values when the total row is absent or its cell is missing.
func (d *PageDecoder) blockTotal(table domain.RawPage, totalRow, col int, kind MetricKind, values []float64) float64 {
	if totalRow < len(table.Rows) {
		if v := normalizeByKind(table.Cell(totalRow, col), kind); v != Sentinel {
			return v
		}
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

func normalizeByKind(cell string, kind MetricKind) float64 {
	if kind == KindInt {
		return float64(NormalizeInt(cell))
	}
	return NormalizeFloat(cell)
}

// dropSpuriousColumns removes extraction-artifact columns, realigning every
// row to the surviving headers.
func dropSpuriousColumns(page domain.RawPage) domain.RawPage {
	var keep []int
	for i, h := range page.Headers {
		if !spuriousColumn(h) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(page.Headers) {
		return page
	}

	headers := make([]string, len(keep))
	for i, idx := range keep {
		headers[i] = page.Headers[idx]
	}
	rows := make([][]string, len(page.Rows))
	for r := range page.Rows {
		row := make([]string, len(keep))
		for i, idx := range keep {
			row[i] = page.Cell(r, idx)
		}
		rows[r] = row
	}
	return domain.RawPage{Headers: headers, Rows: rows}
}
