package parse

import "fmt"

// isoLayout is the strftime pattern for the canonical intermediate form
// every parser in this package converts through before handing the result
// to validate.Convert for final re-formatting.
const isoLayout = "%Y-%m-%d"

// isoKey renders year/month/day as an ISO 8601 date string, zero-padded.
func isoKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
