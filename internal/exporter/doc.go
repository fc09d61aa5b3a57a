// Package exporter writes the reporting tables as spreadsheets.
//
// Float columns get the accounting number format, integer columns the plain
// numeric one, and column widths follow the widest cell. Matrix sheets that
// already exist on disk are reconciled rather than overwritten: a changed
// month column replaces the old one only when the old column was never
// populated (all zero), and the yearly total is always recomputed from the
// final columns.
package exporter
