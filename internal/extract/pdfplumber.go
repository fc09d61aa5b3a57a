package extract

import (
	"context"
	"fmt"
	"strings"

	pdfplumber "github.com/allieus/pdfplumber-go"
	"github.com/ledongthuc/pdf"

	"roomledger/pkg/contracts/domain"
)

// PlumberSource extracts page tables with pdfplumber-go and first-page text
// with ledongthuc/pdf. The occupancy reports draw no cell borders, so table
// detection runs with the text strategy.
type PlumberSource struct{}

// NewPlumberSource creates the production table source.
func NewPlumberSource() *PlumberSource {
	return &PlumberSource{}
}

// Extract implements Source. Each page contributes at most one table; the
// first detected table's first row is taken as the header row.
func (s *PlumberSource) Extract(ctx context.Context, path string) ([]domain.RawPage, error) {
	doc, err := pdfplumber.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer doc.Close()

	pages := make([]domain.RawPage, 0, doc.PageCount())
	for i := 0; i < doc.PageCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := doc.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d of %s: %w", i+1, path, err)
		}

		tables := page.ExtractTables(pdfplumber.WithTableStrategy("text", "text"))
		if len(tables) == 0 || len(tables[0].Rows) < 2 {
			pages = append(pages, domain.RawPage{})
			continue
		}

		rows := tables[0].Rows
		headers := make([]string, len(rows[0]))
		for j, h := range rows[0] {
			headers[j] = strings.TrimSpace(h)
		}
		pages = append(pages, domain.RawPage{
			Headers: headers,
			Rows:    rows[1:],
		})
	}

	return pages, nil
}

// FirstPageText implements Source. A file whose first page yields no text
// returns "", nil; year resolution falls back from there.
func (s *PlumberSource) FirstPageText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return "", nil
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}
