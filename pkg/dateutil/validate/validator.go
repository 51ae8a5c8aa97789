// Package validate implements the Date Validator: it decides whether a
// candidate date string lies within configured bounds and can convert a
// date between two calendar formatting patterns.
package validate

import "time"

// probeDate is used to check that a format produces distinct, non-empty
// output before it is accepted. Any fixed date works; this one exercises
// every directive in the table (double-digit month/day, non-trivial year).
var probeDate = time.Date(2006, time.November, 18, 15, 4, 5, 0, time.UTC)

// Bounds clamps accepted dates, mirroring the configured min_date/max_date
// of spec.md's Configuration block.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// Contains reports whether t falls within [b.Min, b.Max] inclusive. A zero
// Min or Max is treated as unbounded on that side.
func (b Bounds) Contains(t time.Time) bool {
	if !b.Min.IsZero() && t.Before(b.Min) {
		return false
	}
	if !b.Max.IsZero() && t.After(b.Max) {
		return false
	}
	return true
}

// OutputFormatValid reports whether format is usable as an output pattern:
// it must carry at least one recognized directive, and applying it to a
// known-good date must yield non-empty output that differs from the raw
// pattern (so a pattern with no directives at all, like "ABC", is caught
// even though ToGoLayout would accept it as zero-directive literal text).
func OutputFormatValid(format string) bool {
	layout, directiveCount, ok := ToGoLayout(format)
	if !ok || directiveCount == 0 {
		return false
	}
	rendered := probeDate.Format(layout)
	return rendered != "" && rendered != format
}

// DateValid reports whether dateString parses strictly under format and
// the resulting date lies within bounds. Month, day, and leap-year
// validity are enforced by time.Parse itself: out-of-range components
// (month 13, day 98, Feb 29 on a non-leap year) fail to parse.
func DateValid(dateString, format string, bounds Bounds) bool {
	if !OutputFormatValid(format) {
		return false
	}
	layout, _, _ := ToGoLayout(format)
	t, err := time.Parse(layout, dateString)
	if err != nil {
		return false
	}
	return bounds.Contains(t)
}

// Convert strictly re-formats dateString from inFormat to outFormat. It
// fails with a *ParseError when dateString does not match inFormat.
func Convert(dateString, inFormat, outFormat string) (string, error) {
	inLayout, _, inOK := ToGoLayout(inFormat)
	if !inOK {
		return "", &FormatError{Format: inFormat, Message: "unsupported directive"}
	}
	outLayout, directiveCount, outOK := ToGoLayout(outFormat)
	if !outOK || directiveCount == 0 {
		return "", &FormatError{Format: outFormat, Message: "no recognized directive"}
	}
	t, err := time.Parse(inLayout, dateString)
	if err != nil {
		return "", NewParseError(dateString, inFormat, err)
	}
	return t.Format(outLayout), nil
}
