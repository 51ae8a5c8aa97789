// Package pattern implements the Pattern Searcher (spec.md §4.4): it scans
// free text for three tiers of date-shaped regex, from most to least
// specific, and asks the Candidate Selector to pick a winner within each
// tier before falling through to the next.
package pattern

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dateforge/htmldate/pkg/dateutil/candidate"
	"github.com/dateforge/htmldate/pkg/dateutil/parse"
	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// Tier 1: full year-month-day, the most specific and least ambiguous shape.
var (
	tier1Separated = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})[./-](\d{1,2})[./-](\d{1,2})(?:\D|$)`)
	tier1Compact   = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(\d{2})(\d{2})(?:\D|$)`)
)

// Tier 2: day-month-year (2 or 4 digit year) and bare month-year, either
// order.
var (
	tier2DayMonthYear = regexp.MustCompile(`(?:^|\D)(\d{1,2})[./-](\d{1,2})[./-](\d{2}|\d{4})(?:\D|$)`)
	tier2YearMonth    = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})[./-](\d{1,2})(?:\D|$)`)
	tier2MonthYear    = regexp.MustCompile(`(?:^|\D)(\d{1,2})[./-]((?:19|20)\d{2})(?:\D|$)`)
)

// Tier 3: a bare plausible-looking year, restricted to the 2000-2199
// window as specified.
var tier3BareYear = regexp.MustCompile(`(?:^|\D)(2[01]\d{2})(?:\D|$)`)

// Search scans text for date candidates, returning the winning date under
// outputFormat. Tiers are consulted from most to least specific; a tier
// that produces a Candidate Selector winner stops the cascade, per
// spec.md §4.4.
func Search(text string, original bool, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	minYear, maxYear := boundYears(bounds, reference)

	if entries := harvestTriple(text, tier1Separated, tier1Compact, reference); len(entries) > 0 {
		if winner, ok := candidate.Select(entries, original, minYear, maxYear); ok {
			return render(winner, outputFormat)
		}
	}
	if entries := harvestTier2(text, reference); len(entries) > 0 {
		if winner, ok := candidate.Select(entries, original, minYear, maxYear); ok {
			return render(winner, outputFormat)
		}
	}
	if entries := harvestBareYear(text); len(entries) > 0 {
		if winner, ok := candidate.Select(entries, original, minYear, maxYear); ok {
			return render(winner, outputFormat)
		}
	}
	return "", false
}

func boundYears(bounds validate.Bounds, reference time.Time) (int, int) {
	minYear, maxYear := 1, 9999
	if !bounds.Min.IsZero() {
		minYear = bounds.Min.Year()
	}
	if !bounds.Max.IsZero() {
		maxYear = bounds.Max.Year()
	} else {
		maxYear = reference.Year()
	}
	return minYear, maxYear
}

func render(e candidate.Entry, outputFormat string) (string, bool) {
	key := fmt.Sprintf("%04d-%02d-%02d", e.Year, e.Month, e.Day)
	out, err := validate.Convert(key, "%Y-%m-%d", outputFormat)
	if err != nil {
		return "", false
	}
	return out, true
}

type dateKey struct{ year, month, day int }

func accumulate(counts map[dateKey]int, year, month, day int) {
	if !parse.ValidCalendarDate(year, month, day) {
		return
	}
	counts[dateKey{year, month, day}]++
}

func toEntries(counts map[dateKey]int) []candidate.Entry {
	entries := make([]candidate.Entry, 0, len(counts))
	for k, n := range counts {
		entries = append(entries, candidate.Entry{Year: k.year, Month: k.month, Day: k.day, Count: n})
	}
	return entries
}

func harvestTriple(text string, separated, compact *regexp.Regexp, reference time.Time) []candidate.Entry {
	counts := map[dateKey]int{}
	for _, m := range separated.FindAllStringSubmatch(text, -1) {
		accumulate(counts, atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	for _, m := range compact.FindAllStringSubmatch(text, -1) {
		accumulate(counts, atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	return toEntries(counts)
}

func harvestTier2(text string, reference time.Time) []candidate.Entry {
	counts := map[dateKey]int{}
	for _, m := range tier2DayMonthYear.FindAllStringSubmatch(text, -1) {
		day, month := atoi(m[1]), atoi(m[2])
		year := expandYearGroup(m[3], reference)
		accumulate(counts, year, month, day)
	}
	for _, m := range tier2YearMonth.FindAllStringSubmatch(text, -1) {
		accumulate(counts, atoi(m[1]), atoi(m[2]), 1)
	}
	for _, m := range tier2MonthYear.FindAllStringSubmatch(text, -1) {
		accumulate(counts, atoi(m[2]), atoi(m[1]), 1)
	}
	return toEntries(counts)
}

func harvestBareYear(text string) []candidate.Entry {
	counts := map[dateKey]int{}
	for _, m := range tier3BareYear.FindAllStringSubmatch(text, -1) {
		accumulate(counts, atoi(m[1]), 1, 1)
	}
	return toEntries(counts)
}

func expandYearGroup(s string, reference time.Time) int {
	if len(s) == 2 {
		return parse.ExpandTwoDigitYear(atoi(s), reference)
	}
	return atoi(s)
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
