package parse

import (
	"testing"
	"time"
)

func TestValidCalendarDate(t *testing.T) {
	cases := []struct {
		name             string
		year, month, day int
		want             bool
	}{
		{"ordinary", 2017, 9, 1, true},
		{"month 13", 2017, 13, 1, false},
		{"day 0", 2017, 1, 0, false},
		{"feb 29 leap", 2020, 2, 29, true},
		{"feb 29 non-leap", 2019, 2, 29, false},
		{"feb 29 century non-leap", 1900, 2, 29, false},
		{"feb 29 century leap", 2000, 2, 29, true},
		{"april 31", 2017, 4, 31, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCalendarDate(tc.year, tc.month, tc.day); got != tc.want {
				t.Errorf("ValidCalendarDate(%d,%d,%d) = %v, want %v", tc.year, tc.month, tc.day, got, tc.want)
			}
		})
	}
}

func TestExpandTwoDigitYear(t *testing.T) {
	reference := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		twoDigit int
		want     int
	}{
		{17, 2017},
		{26, 2026},
		{36, 2036}, // within pivotSlack of reference's two-digit year (26)
		{87, 1987},
		{99, 1999},
	}
	for _, tc := range cases {
		if got := ExpandTwoDigitYear(tc.twoDigit, reference); got != tc.want {
			t.Errorf("ExpandTwoDigitYear(%d) = %d, want %d", tc.twoDigit, got, tc.want)
		}
	}
}
