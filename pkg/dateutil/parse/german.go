package parse

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var germanLower = cases.Lower(language.German)

// germanLongForm matches "D[.] Monat YYYY", e.g. "3. Dezember 2008".
var germanLongForm = regexp.MustCompile(`(?i)\b([0-9]{1,2})\.?\s+([A-Za-zÄÖÜäöü]+)\s+([0-9]{4})\b`)

// RegexParseDE matches the German long form described in spec.md §4.2 —
// "D[.] Monat YYYY" — validating the day against the named month. It
// returns false when the month name is unrecognized or the day/month
// combination is not a real calendar date (e.g. "33. Dezember 2008").
func RegexParseDE(fragment, outputFormat string) (string, bool) {
	m := germanLongForm.FindStringSubmatch(fragment)
	if m == nil {
		return "", false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	month, known := germanMonths[germanLower.String(m[2])]
	if !known {
		return "", false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return "", false
	}
	return buildDate(year, month, day, outputFormat)
}
