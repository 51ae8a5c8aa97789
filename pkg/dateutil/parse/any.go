package parse

import (
	"time"

	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// Any runs fragment through the compact numeric, German, and English
// parsers in turn, falling back to TryFreeform when none of them match.
// It is the cascade the Header and Body Examiners run every extracted
// candidate string through before accepting it.
func Any(fragment, outputFormat string, bounds validate.Bounds, reference time.Time) (string, bool) {
	for _, fn := range []func(string, string) (string, bool){CustomParse, RegexParseDE, RegexParseEN} {
		if out, ok := fn(fragment, outputFormat); ok && validate.DateValid(out, outputFormat, bounds) {
			return out, true
		}
	}
	return TryFreeform(fragment, outputFormat, bounds, reference)
}
