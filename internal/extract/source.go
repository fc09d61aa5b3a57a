package extract

import (
	"context"
	"sync"

	"roomledger/pkg/contracts/domain"
)

// Source hands back the raw tabular content of a report file. Implementations
// may be stateful and are not required to be safe for concurrent use; wrap
// with NewSerialSource before sharing across goroutines.
type Source interface {
	// Extract returns one RawPage per physical page of the file, in page
	// order. Pages without a detectable table come back empty, not as an
	// error.
	Extract(ctx context.Context, path string) ([]domain.RawPage, error)

	// FirstPageText returns the plain text of the file's first page.
	FirstPageText(ctx context.Context, path string) (string, error)
}

// SerialSource serializes access to an underlying Source. The lock covers
// only the extraction call itself, so decoding of already-extracted pages
// proceeds in parallel across batches.
type SerialSource struct {
	mu  sync.Mutex
	src Source
}

// NewSerialSource wraps src with mutual exclusion.
func NewSerialSource(src Source) *SerialSource {
	return &SerialSource{src: src}
}

// Extract implements Source.
func (s *SerialSource) Extract(ctx context.Context, path string) ([]domain.RawPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Extract(ctx, path)
}

// FirstPageText implements Source.
func (s *SerialSource) FirstPageText(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.FirstPageText(ctx, path)
}
