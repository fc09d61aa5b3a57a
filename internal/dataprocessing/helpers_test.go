package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"roomledger/pkg/contracts/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// reportPage builds a raw page in the physical report layout: one block per
// entry of rooms, each spanning a room sub-row, one sub-row per month, and an
// explicit total sub-row. The final page of a file additionally carries a
// footer row.
type roomBlock struct {
	room     int
	months   []string
	arrivals []int
	nights   []int
	revenue  []float64
	adr      []float64
}

func reportPage(withFooter bool, blocks ...roomBlock) domain.RawPage {
	page := domain.RawPage{
		Headers: []string{"Room No.", "Month", "No. of Arrivals", "Room Nights", "Room Revenue", "ADR"},
	}
	for _, b := range blocks {
		page.Rows = append(page.Rows, []string{fmt.Sprintf("%d", b.room), "", "", "", "", ""})

		var ta, tn int
		var tr, tADR float64
		for i, month := range b.months {
			page.Rows = append(page.Rows, []string{
				"",
				month,
				fmt.Sprintf("%d", b.arrivals[i]),
				fmt.Sprintf("%d", b.nights[i]),
				fmt.Sprintf("%.2f", b.revenue[i]),
				fmt.Sprintf("%.2f", b.adr[i]),
			})
			ta += b.arrivals[i]
			tn += b.nights[i]
			tr += b.revenue[i]
			tADR += b.adr[i]
		}

		page.Rows = append(page.Rows, []string{
			"",
			"Total",
			fmt.Sprintf("%d", ta),
			fmt.Sprintf("%d", tn),
			fmt.Sprintf("%.2f", tr),
			fmt.Sprintf("%.2f", tADR),
		})
	}
	if withFooter {
		page.Rows = append(page.Rows, []string{"Printed by night audit", "", "", "", "", ""})
	}
	return page
}

// fakeSource serves canned pages per file path and records how many Extract
// calls overlap, to verify extraction stays serialized.
type fakeSource struct {
	mu      sync.Mutex
	pages   map[string][]domain.RawPage
	text    map[string]string
	delay   time.Duration
	active  int
	maxSeen int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pages: make(map[string][]domain.RawPage),
		text:  make(map[string]string),
	}
}

func (f *fakeSource) addFile(path string, firstPageText string, pages ...domain.RawPage) {
	f.pages[path] = pages
	f.text[path] = firstPageText
}

func (f *fakeSource) Extract(ctx context.Context, path string) ([]domain.RawPage, error) {
	f.mu.Lock()
	f.active++
	if f.active > f.maxSeen {
		f.maxSeen = f.active
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.active--
	pages, ok := f.pages[path]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("no such file %s", path)
	}
	return pages, nil
}

func (f *fakeSource) FirstPageText(ctx context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text[path], nil
}

func (f *fakeSource) maxConcurrent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxSeen
}

// firstPageFor renders the three header lines the year resolver expects.
func firstPageFor(year int) string {
	return fmt.Sprintf("Hotel Horizon\nOccupancy Report\nPeriod: %d\nPage 1", year)
}
