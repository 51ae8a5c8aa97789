package parse

import "testing"

func TestRegexParseEN(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		want     string
		wantOK   bool
	}{
		{"weekday prefixed", "Tuesday, March 26th, 2019", "2019-03-26", true},
		{"no weekday no ordinal", "March 26, 2019", "2019-03-26", true},
		{"ordinal st", "posted on January 1st, 2021", "2021-01-01", true},
		{"slash mdy", "3/26/2019", "2019-03-26", true},
		{"unrecognized month", "Smarch 26, 2019", "", false},
		{"slash month out of range", "36/14/2016", "", false},
		{"no match", "no date here", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RegexParseEN(tc.fragment, "%Y-%m-%d")
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
