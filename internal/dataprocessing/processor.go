package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roomledger/internal/extract"
)

// Processor decodes one batch of report files into a TableSet. The source it
// is given is expected to already serialize extraction; decoding itself
// touches only batch-local state.
type Processor struct {
	source  extract.Source
	decoder *PageDecoder
	logger  *slog.Logger
}

// NewProcessor creates a batch processor.
func NewProcessor(source extract.Source, decoder *PageDecoder, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{source: source, decoder: decoder, logger: logger}
}

// BatchResult carries one batch's decoded tables plus timing for the log.
type BatchResult struct {
	BatchID int
	Elapsed time.Duration
	Tables  *TableSet
}

// ProcessBatch decodes every file in the batch. A file that fails to extract
// or decode is logged and skipped; the batch continues with the rest.
func (p *Processor) ProcessBatch(ctx context.Context, batchID int, files []string) BatchResult {
	start := time.Now()
	tables := NewTableSet()

	for _, file := range files {
		if err := p.processFile(ctx, file, tables); err != nil {
			p.logger.Error("skipping report file",
				slog.Int("batch", batchID),
				slog.String("file", file),
				slog.String("error", err.Error()))
		}
	}

	return BatchResult{
		BatchID: batchID,
		Elapsed: time.Since(start),
		Tables:  tables,
	}
}

func (p *Processor) processFile(ctx context.Context, file string, tables *TableSet) error {
	year := p.resolveYear(ctx, file)

	pages, err := p.source.Extract(ctx, file)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	table := tables.GetOrInsert(year)
	for i, page := range pages {
		if page.Empty() {
			p.logger.Warn("pdf page table is empty",
				slog.String("file", file),
				slog.Int("page", i+1))
			continue
		}

		observations, err := p.decoder.DecodePage(file, i, page, i == len(pages)-1)
		if err != nil {
			p.logger.Warn("failed to decode pdf page",
				slog.String("file", file),
				slog.Int("page", i+1),
				slog.String("error", err.Error()))
			continue
		}
		for _, obs := range observations {
			table.Add(obs)
		}
	}

	return nil
}

// resolveYear never fails: a file whose first page yields no text or no year
// token lands in the current calendar year.
func (p *Processor) resolveYear(ctx context.Context, file string) int {
	text, err := p.source.FirstPageText(ctx, file)
	if err != nil {
		p.logger.Debug("could not read first-page text",
			slog.String("file", file),
			slog.String("error", err.Error()))
		text = ""
	}
	return ResolveYear(text)
}
