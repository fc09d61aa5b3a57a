package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var yearToken = regexp.MustCompile(`\d{4}`)

// yearLine is the first-page text line the report prints its period on.
const yearLine = 2

// ResolveYear extracts the reporting year from a report's first-page text.
// It inspects the third line for a four-digit token and falls back to the
// current calendar year when none is found; it never fails.
func ResolveYear(firstPageText string) int {
	lines := strings.Split(firstPageText, "\n")
	if len(lines) > yearLine {
		if token := yearToken.FindString(lines[yearLine]); token != "" {
			year, err := strconv.Atoi(token)
			if err == nil {
				return year
			}
		}
	}
	return time.Now().Year()
}
