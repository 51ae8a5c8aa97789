package finddate

import (
	"context"
	"testing"
	"time"

	"github.com/dateforge/htmldate/pkg/dateutil/config"
)

func TestFind(t *testing.T) {
	reference := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	bounds := config.WithDateBounds(
		time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC),
		reference,
	)

	cases := []struct {
		name   string
		html   string
		opts   []config.Option
		want   string
		wantOK bool
	}{
		{
			name: "header published time wins outright",
			html: `<html><head>
				<meta property="article:published_time" content="2017-09-01T12:00:00Z">
			</head><body><p>filler content with no other dates</p></body></html>`,
			opts:   []config.Option{bounds},
			want:   "2017-09-01",
			wantOK: true,
		},
		{
			name: "original_date prefers earliest of a published/updated pair",
			html: `<html><head>
				<meta property="og:updated_time" content="2017-09-01T12:00:00Z">
				<meta property="og:original_time" content="2017-07-02T12:00:00Z">
			</head><body></body></html>`,
			opts:   []config.Option{bounds, config.WithOriginalDate(true)},
			want:   "2017-07-02",
			wantOK: true,
		},
		{
			name: "body time element used when header has no signal",
			html: `<html><head></head><body>
				<p>Some intro text.</p>
				<time datetime="2018-06-15">June 15</time>
			</body></html>`,
			opts:   []config.Option{bounds},
			want:   "2018-06-15",
			wantOK: true,
		},
		{
			name: "url probe used as last resort when nothing else matches",
			html: `<html><head></head><body><p>no structured date here</p></body></html>`,
			opts: []config.Option{
				bounds,
				config.WithURL("http://example.com/category/2016/07/12/key-words"),
			},
			want:   "2016-07-12",
			wantOK: true,
		},
		{
			name: "url with only a year path segment does not match",
			html: `<html><head></head><body><p>no structured date here</p></body></html>`,
			opts: []config.Option{
				bounds,
				config.WithURL("http://example.com/2016/key-words"),
			},
			want:   "",
			wantOK: false,
		},
		{
			name: "free text copyright line found via extensive search",
			html: `<html><head></head><body><footer>© 2017 Example Corp</footer></body></html>`,
			opts:   []config.Option{bounds},
			want:   "2017-01-01",
			wantOK: true,
		},
		{
			name: "extensive search disabled suppresses free text fallback",
			html: `<html><head></head><body><footer>© 2017 Example Corp</footer></body></html>`,
			opts: []config.Option{
				bounds,
				config.WithExtensiveSearch(false),
			},
			want:   "",
			wantOK: false,
		},
		{
			name:   "empty document yields no date",
			html:   "",
			opts:   []config.Option{bounds},
			want:   "",
			wantOK: false,
		},
		{
			name: "bare url input runs the url probe even with extensive search disabled",
			html: "http://example.com/category/2016/07/12/key-words",
			opts: []config.Option{
				bounds,
				config.WithExtensiveSearch(false),
			},
			want:   "2016-07-12",
			wantOK: true,
		},
		{
			name: "out of bounds header date is rejected",
			html: `<html><head>
				<meta property="article:published_time" content="1899-01-01T00:00:00Z">
			</head><body></body></html>`,
			opts:   []config.Option{bounds},
			want:   "",
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Find(tc.html, tc.opts...)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tc.wantOK, got)
			}
			if ok && got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

type stubFetcher struct {
	html string
	ok   bool
}

func (f stubFetcher) Fetch(_ context.Context, _ string) (string, bool) {
	return f.html, f.ok
}

func TestFindWithFetcher(t *testing.T) {
	reference := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	bounds := config.WithDateBounds(
		time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC),
		reference,
	)

	fetcher := stubFetcher{
		html: `<html><head>
			<meta property="article:published_time" content="2019-03-14T00:00:00Z">
		</head><body></body></html>`,
		ok: true,
	}

	got, ok := FindWithFetcher(context.Background(), "http://example.com/post", fetcher, bounds)
	if !ok || got != "2019-03-14" {
		t.Errorf("got %q, %v, want 2019-03-14, true", got, ok)
	}
}

func TestFindWithFetcherFailure(t *testing.T) {
	fetcher := stubFetcher{ok: false}
	if _, ok := FindWithFetcher(context.Background(), "http://example.com/post", fetcher); ok {
		t.Error("expected no date when the fetch fails")
	}
}
