package dataprocessing

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"roomledger/internal/config"
	"roomledger/internal/extract"
)

// Coordinator partitions the discovered report files into fixed-size batches,
// runs each batch on a bounded worker pool, and folds batch results into one
// TableSet in completion order. It owns the merged tables exclusively: every
// fold happens on the coordinating goroutine after a batch resolves.
type Coordinator struct {
	cfg       config.ProcessingConfig
	processor *Processor
	logger    *slog.Logger

	complete bool
	elapsed  time.Duration
}

// NewCoordinator wires a coordinator around the given raw table source. The
// source is wrapped for mutual exclusion here, because the extraction library
// is not safe for concurrent invocation; decoding stays parallel.
func NewCoordinator(cfg config.ProcessingConfig, source extract.Source, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	serial := extract.NewSerialSource(source)
	decoder := NewPageDecoder(cfg, logger)
	return &Coordinator{
		cfg:       cfg,
		processor: NewProcessor(serial, decoder, logger),
		logger:    logger,
	}
}

// Run processes all files and returns the merged per-year tables. It returns
// ErrNoReports for an empty file list and ErrNoBatchOutput when every batch
// finished without producing data; in both cases execution stays incomplete
// and the caller must not proceed to the build/output stages.
func (c *Coordinator) Run(ctx context.Context, files []string) (*TableSet, error) {
	if len(files) == 0 {
		return nil, ErrNoReports
	}

	start := time.Now()
	batches := partition(files, c.cfg.BatchSize)
	results := make(chan BatchResult, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers())

	for i, batch := range batches {
		batchID, batchFiles := i+1, batch
		g.Go(func() error {
			c.logger.Info("processing report batch",
				slog.Int("batch", batchID),
				slog.Int("files", len(batchFiles)))
			res := c.processor.ProcessBatch(gctx, batchID, batchFiles)
			c.logger.Info("finished report batch",
				slog.Int("batch", res.BatchID),
				slog.Int64("elapsed_ms", res.Elapsed.Milliseconds()))
			results <- res
			return nil
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	merged := NewTableSet()
	for res := range results {
		merged.Merge(res.Tables)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if merged.Empty() {
		c.logger.Error("no batch results generated")
		return nil, ErrNoBatchOutput
	}

	c.complete = true
	c.elapsed = time.Since(start)
	c.logger.Info("processed pdf reports",
		slog.Int("files", len(files)),
		slog.Int("batches", len(batches)),
		slog.Int64("elapsed_ms", c.elapsed.Milliseconds()))

	return merged, nil
}

// Complete reports whether the last Run produced output.
func (c *Coordinator) Complete() bool {
	return c.complete
}

// Elapsed returns the duration of the last completed Run.
func (c *Coordinator) Elapsed() time.Duration {
	return c.elapsed
}

func (c *Coordinator) workers() int {
	if c.cfg.Workers > 0 {
		return c.cfg.Workers
	}
	return runtime.NumCPU()
}

// partition splits files into consecutive batches of at most size each.
func partition(files []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var batches [][]string
	for i := 0; i < len(files); i += size {
		end := i + size
		if end > len(files) {
			end = len(files)
		}
		batches = append(batches, files[i:end])
	}
	return batches
}
