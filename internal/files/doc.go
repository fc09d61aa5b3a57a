// Package files provides discovery of the PDF report files the pipeline
// consumes. No filename convention is assumed; any readable *.pdf in the
// reports directory is a candidate report.
package files
