package parse

import "regexp"

// urlSlashDate matches /YYYY/MM/ or /YYYY/MM/DD/ path components. The day
// is optional; when absent the first day of the month is assumed, per
// spec.md §4.2.
var urlSlashDate = regexp.MustCompile(`/((?:19|20)\d{2})/(\d{1,2})(?:/(\d{1,2}))?/`)

// urlDashDate matches a single /YYYY-MM-DD/ path component in full; unlike
// the slash form, all three fields are required — a bare /YYYY-MM/ segment
// is too easily confused with a non-date numeric slug and is not matched.
var urlDashDate = regexp.MustCompile(`/((?:19|20)\d{2})-(\d{2})-(\d{2})/`)

// urlMonthAbbrevDate matches /YYYY/mon/DD/ with a three-letter English
// month abbreviation, e.g. "/2023/dec/01/". This form is not present in
// spec.md's worked examples but appears in the reference implementation's
// own URL probe table; it is cheap to support alongside the numeric forms.
var urlMonthAbbrevDate = regexp.MustCompile(`(?i)/((?:19|20)\d{2})/(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)/(\d{1,2})/`)

// ExtractPartialURLDate searches url for a /YYYY/MM(/DD)? or /YYYY-MM-DD/
// path component and returns the corresponding date rendered under
// outputFormat. It rejects matches whose month or day fall outside
// calendar ranges.
func ExtractPartialURLDate(url, outputFormat string) (string, bool) {
	if m := urlDashDate.FindStringSubmatch(url); m != nil {
		return buildDate(atoiOr(m[1]), atoiOr(m[2]), atoiOr(m[3]), outputFormat)
	}
	if m := urlMonthAbbrevDate.FindStringSubmatch(url); m != nil {
		month, known := englishMonths[englishLower.String(m[2])]
		if !known {
			return "", false
		}
		return buildDate(atoiOr(m[1]), month, atoiOr(m[3]), outputFormat)
	}
	if m := urlSlashDate.FindStringSubmatch(url); m != nil {
		day := 1
		if m[3] != "" {
			day = atoiOr(m[3])
		}
		return buildDate(atoiOr(m[1]), atoiOr(m[2]), day, outputFormat)
	}
	return "", false
}
