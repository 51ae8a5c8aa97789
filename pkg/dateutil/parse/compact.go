package parse

import (
	"regexp"
	"strconv"

	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// compactNumeric matches an 8-digit run with no separator: YYYYMMDD.
var compactNumeric = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)

// isoSeparated matches a year-first form with a single consistent
// separator: YYYY-MM-DD, YYYY/MM/DD, YYYY.MM.DD.
var isoSeparated = regexp.MustCompile(`^(\d{4})([-/.])(\d{1,2})\2(\d{1,2})$`)

// dmySeparated matches a day-first form with a four-digit year at the end:
// DD.MM.YYYY, DD/MM/YYYY, DD-MM-YYYY.
var dmySeparated = regexp.MustCompile(`^(\d{1,2})([-/.])(\d{1,2})\2(\d{4})$`)

// CustomParse recognizes the unambiguous compact numeric forms described in
// spec.md §4.2. It returns a canonical date string in outputFormat, or ok
// == false when the fragment does not match any of the supported forms or
// its components fall outside calendar ranges. Ambiguous no-separator
// forms with two plausible splits (e.g. "12122004") are rejected because
// interpreting them as YYYYMMDD yields an invalid month/day.
func CustomParse(fragment, outputFormat string) (string, bool) {
	if m := compactNumeric.FindStringSubmatch(fragment); m != nil {
		return buildDate(atoiOr(m[1]), atoiOr(m[2]), atoiOr(m[3]), outputFormat)
	}
	if m := isoSeparated.FindStringSubmatch(fragment); m != nil {
		return buildDate(atoiOr(m[1]), atoiOr(m[3]), atoiOr(m[4]), outputFormat)
	}
	if m := dmySeparated.FindStringSubmatch(fragment); m != nil {
		return buildDate(atoiOr(m[4]), atoiOr(m[3]), atoiOr(m[1]), outputFormat)
	}
	return "", false
}

func atoiOr(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// buildDate validates year/month/day and renders it under outputFormat.
func buildDate(year, month, day int, outputFormat string) (string, bool) {
	if !ValidCalendarDate(year, month, day) {
		return "", false
	}
	out, err := validate.Convert(isoKey(year, month, day), isoLayout, outputFormat)
	if err != nil {
		return "", false
	}
	return out, true
}
