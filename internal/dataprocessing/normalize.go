package dataprocessing

import (
	"strconv"
	"strings"
)

// Sentinel substitutes for missing or non-numeric cells after normalization.
// Downstream stages propagate it rather than treating it as zero.
const Sentinel = -1

// normalizeNumeric trims a raw cell and strips thousands-separator commas.
// The second return is false when the cell is missing (empty after trim).
func normalizeNumeric(cell string) (string, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", false
	}
	return strings.ReplaceAll(s, ",", ""), true
}

// NormalizeInt coerces a raw cell to an integer, substituting Sentinel for
// missing or unparseable values.
func NormalizeInt(cell string) int {
	s, ok := normalizeNumeric(cell)
	if !ok {
		return Sentinel
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some extractors render integral cells as "12.0".
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return Sentinel
		}
		return int(f)
	}
	return n
}

// NormalizeFloat coerces a raw cell to a float, substituting Sentinel for
// missing or unparseable values.
func NormalizeFloat(cell string) float64 {
	s, ok := normalizeNumeric(cell)
	if !ok {
		return Sentinel
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Sentinel
	}
	return f
}

// NormalizeText trims a raw cell, returning "" for missing values.
func NormalizeText(cell string) string {
	return strings.TrimSpace(cell)
}
