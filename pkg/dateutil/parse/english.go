package parse

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var englishLower = cases.Lower(language.English)

// englishLongForm matches "[Weekday,] Month Dth, YYYY" with the ordinal
// suffix optional, e.g. "Tuesday, March 26th, 2019" or "March 26, 2019".
var englishLongForm = regexp.MustCompile(`(?i)(?:[A-Za-z]+,\s*)?([A-Za-z]+)\s+([0-9]{1,2})(?:st|nd|rd|th)?,?\s+([0-9]{4})\b`)

// englishSlashMDY matches "M/D/YYYY" assuming month-day-year order.
var englishSlashMDY = regexp.MustCompile(`^([0-9]{1,2})/([0-9]{1,2})/([0-9]{4})$`)

// RegexParseEN matches the English long form and M/D/YYYY form described
// in spec.md §4.2. It returns false when the month name is unrecognized,
// the day ordinal text is malformed, or the month/day combination is not
// a real calendar date (e.g. "3rd Tuesday in March" has no year at all and
// "36/14/2016" has no valid month).
func RegexParseEN(fragment, outputFormat string) (string, bool) {
	if m := englishSlashMDY.FindStringSubmatch(fragment); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return buildDate(year, month, day, outputFormat)
	}
	if m := englishLongForm.FindStringSubmatch(fragment); m != nil {
		month, known := englishMonths[englishLower.String(m[1])]
		if !known {
			return "", false
		}
		day, err := strconv.Atoi(m[2])
		if err != nil {
			return "", false
		}
		year, err := strconv.Atoi(m[3])
		if err != nil {
			return "", false
		}
		return buildDate(year, month, day, outputFormat)
	}
	return "", false
}
