// Package extract adapts external PDF extraction libraries to the raw table
// source contract the decoding pipeline consumes: one RawPage per physical
// page, plus first-page text for year resolution.
//
// The production source is not safe for concurrent invocation, so
// SerialSource wraps it with a mutex scoped to the extraction calls only;
// everything downstream of extraction runs unlocked.
package extract
