package validate

import (
	"testing"
	"time"
)

func TestOutputFormatValid(t *testing.T) {
	cases := []struct {
		name   string
		format string
		want   bool
	}{
		{"iso", "%Y-%m-%d", true},
		{"long form", "%d %B %Y", true},
		{"no directive", "ABC", false},
		{"dangling percent", "%Y-%", false},
		{"unknown directive", "%Q", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutputFormatValid(tc.format); got != tc.want {
				t.Errorf("OutputFormatValid(%q) = %v, want %v", tc.format, got, tc.want)
			}
		})
	}
}

func TestDateValid(t *testing.T) {
	bounds := Bounds{}
	cases := []struct {
		name       string
		dateString string
		format     string
		want       bool
	}{
		{"valid", "2017-09-01", "%Y-%m-%d", true},
		{"invalid month/day", "1901-13-98", "%Y-%m-%d", false},
		{"feb 29 non-leap", "2019-02-29", "%Y-%m-%d", false},
		{"feb 29 leap", "2020-02-29", "%Y-%m-%d", true},
		{"mismatched format", "01-09-2017", "%Y-%m-%d", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DateValid(tc.dateString, tc.format, bounds); got != tc.want {
				t.Errorf("DateValid(%q, %q) = %v, want %v", tc.dateString, tc.format, got, tc.want)
			}
		})
	}
}

func TestDateValidBounds(t *testing.T) {
	bounds := Bounds{Min: mustParse(t, "1995-01-01"), Max: mustParse(t, "2020-01-01")}
	if DateValid("1994-12-31", "%Y-%m-%d", bounds) {
		t.Error("expected date before min to be rejected")
	}
	if DateValid("2020-01-02", "%Y-%m-%d", bounds) {
		t.Error("expected date after max to be rejected")
	}
	if !DateValid("2010-06-15", "%Y-%m-%d", bounds) {
		t.Error("expected in-range date to be accepted")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	out, err := Convert("2017-09-01", "%Y-%m-%d", "%d %B %Y")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out != "01 September 2017" {
		t.Errorf("Convert = %q, want %q", out, "01 September 2017")
	}
	back, err := Convert(out, "%d %B %Y", "%Y-%m-%d")
	if err != nil {
		t.Fatalf("Convert back: %v", err)
	}
	if back != "2017-09-01" {
		t.Errorf("round trip = %q, want %q", back, "2017-09-01")
	}
}

func TestConvertRejectsMismatch(t *testing.T) {
	if _, err := Convert("not-a-date", "%Y-%m-%d", "%d %B %Y"); err == nil {
		t.Error("expected an error for a mismatched date string")
	}
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return parsed
}
