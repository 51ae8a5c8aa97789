package parse

import (
	"regexp"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// timeOnly matches a bare clock time with no date component at all
// ("08:00", "14:35:10", "12:00 h"). go-dateparser happily resolves these
// against CurrentTime and returns today's date, which is not a date
// candidate at all per spec.md §4.2's try_ymd_date contract.
var timeOnly = regexp.MustCompile(`(?i)^[0-9]{1,2}:[0-9]{2}(?::[0-9]{2})?\s*(?:h|hrs?|am|pm)?$`)

// TryFreeform is the fallback parser of spec.md §4.2 ("try_ymd_date"): it
// defers to go-dateparser with locale priority {German, English} and a
// day-of-month-first, day-month-year policy, then post-validates the
// result against bounds before rendering it under outputFormat. This is
// the only component in the package that depends on a heavy third-party
// grammar rather than a hand-written regex.
//
// PREFER_DATES_FROM=past is not exposed as a direct Configuration field on
// the go-dateparser surface this package is grounded on
// (pkg/lint/datetime_fixer.go); reference is passed as CurrentTime so
// relative phrases ("3 days ago") resolve against it, and the bounds check
// below rejects anything that lands in the future relative to the
// caller's max_date — in practice an equivalent backstop for the web
// documents this pipeline is built to read.
func TryFreeform(fragment, outputFormat string, bounds validate.Bounds, reference time.Time) (string, bool) {
	if len(fragment) < 4 {
		return "", false
	}
	if timeOnly.MatchString(strings.TrimSpace(fragment)) {
		return "", false
	}
	if !validate.OutputFormatValid(outputFormat) {
		return "", false
	}
	layout, _, _ := validate.ToGoLayout(outputFormat)

	parser := &dps.Parser{
		ParserTypes: []dps.ParserType{
			dps.AbsoluteTime,
			dps.NoSpacesTime,
			dps.Timestamp,
			dps.RelativeTime,
			dps.CustomFormat,
		},
	}
	cfg := &dps.Configuration{
		DateOrder:           dps.DMY,
		PreferredDayOfMonth: dps.First,
		StrictParsing:       false,
		Languages:           []string{"de", "en"},
		CurrentTime:         reference,
	}

	result, err := parser.Parse(cfg, fragment)
	if err != nil || result == nil {
		return "", false
	}
	if !bounds.Contains(result.Time) {
		return "", false
	}
	return result.Time.Format(layout), true
}
