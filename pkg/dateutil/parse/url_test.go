package parse

import "testing"

func TestExtractPartialURLDate(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"full path", "http://example.com/category/2016/07/12/key-words", "2016-07-12", true},
		{"year-month only", "http://example.com/2016/07/key-words", "2016-07-01", true},
		{"no date", "http://example.com/2016/key-words", "", false},
		{"dash form", "http://example.com/2016-07-12/post", "2016-07-12", true},
		{"month abbreviation", "http://example.com/2023/dec/01/post", "2023-12-01", true},
		{"month out of range", "http://example.com/2016/13/01/", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractPartialURLDate(tc.url, "%Y-%m-%d")
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
