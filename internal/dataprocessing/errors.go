package dataprocessing

import "errors"

var (
	// ErrNoReports indicates the reports directory contained no PDF files.
	// Nothing is processed and nothing is written.
	ErrNoReports = errors.New("no pdf report files found")

	// ErrNoBatchOutput indicates every batch finished without producing any
	// decoded data. Execution is incomplete and output stages must not run.
	ErrNoBatchOutput = errors.New("no batch produced any output")
)
