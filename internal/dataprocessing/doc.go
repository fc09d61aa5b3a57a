// Package dataprocessing reconstructs semantic room/month records from raw
// extracted PDF page tables and aggregates them into per-year reporting
// tables.
//
// The flow mirrors the report structure: PageDecoder turns one raw page into
// observations (one per room block), Processor applies the decoder across a
// batch of files, Coordinator runs batches concurrently and merges their
// year tables in completion order, and Builder derives the detail table and
// the revenue/booking matrices from the merged result.
package dataprocessing
