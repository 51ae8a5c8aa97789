package parse

import (
	"time"

	"testing"

	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

func TestAny(t *testing.T) {
	bounds := validate.Bounds{
		Min: time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC),
		Max: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	reference := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		fragment string
		want     string
		wantOK   bool
	}{
		{"compact numeric wins first", "20170901", "2017-09-01", true},
		{"german long form", "3. Dezember 2008", "2008-12-03", true},
		{"english long form", "March 26, 2019", "2019-03-26", true},
		{"freeform fallback", "early January 2018", "2018-01-01", true},
		{"out of bounds rejected by custom parse falls to freeform", "1899-05-01", "", false},
		{"nonsense", "not a date at all", "", false},
		{"bare clock time carries no date component", "08:00", "", false},
		{"bare clock time with seconds", "14:35:10", "", false},
		{"bare clock time with hour suffix", "12:00 h", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Any(tc.fragment, "%Y-%m-%d", bounds, reference)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tc.wantOK, got)
			}
			if ok && got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
