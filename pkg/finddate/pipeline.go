// Package finddate implements the Discovery Pipeline (spec.md §4.7), the
// public entry point of the date-discovery library: it normalizes the
// caller's input, runs the Header and Body Examiners, the URL probe, and
// (when extensive search is enabled) the free-text Pattern Searcher, and
// reconciles whatever they find into a single validated date.
package finddate

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dateforge/htmldate/pkg/dateutil/body"
	"github.com/dateforge/htmldate/pkg/dateutil/config"
	"github.com/dateforge/htmldate/pkg/dateutil/header"
	"github.com/dateforge/htmldate/pkg/dateutil/parse"
	"github.com/dateforge/htmldate/pkg/dateutil/pattern"
	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// MaxInputBytes bounds the size of a document handed to the pipeline
// before any regex runs, the resource cap spec.md §5 calls for even on a
// linear-time engine.
const MaxInputBytes = 10_000_000

// Tier identifies which stage of the cascade produced a Candidate.
type Tier int

const (
	HeaderTier Tier = iota
	BodyTier
	URLTier
	TextTier
)

// Candidate is a date string together with the tier that produced it.
type Candidate struct {
	Date string
	Tier Tier
}

// URLFetcher is the out-of-scope HTTP collaborator finddate depends on
// only through this interface; pkg/htmlfetch provides the concrete
// implementation, and pkg/finddate never imports net/http itself.
type URLFetcher interface {
	Fetch(ctx context.Context, url string) (string, bool)
}

// Find is the library entry point. input accepts a string, an io.Reader,
// or a *goquery.Document — the "document string, parsed element tree, or
// URL string" of spec.md §3. A bare URL string is treated as a degenerate
// empty document with config.Options.URL inferred from it. Find never
// panics on malformed input; it returns ("", false) for every recoverable
// failure mode (spec.md §7).
func Find(input any, opts ...config.Option) (string, bool) {
	o := config.Apply(opts...)
	applyBareURLHint(input, o)
	return find(input, nil, o)
}

// FindWithFetcher behaves like Find, except that when input is a bare URL
// string it fetches that URL via fetcher and runs the pipeline over the
// fetched document; a failed fetch yields ("", false). Any other input is
// handled exactly as Find handles it, and o.URL is never fetched (it only
// feeds the URL probe). This lets a caller wire in pkg/htmlfetch.Fetcher
// without pkg/finddate importing net/http.
func FindWithFetcher(ctx context.Context, input any, fetcher URLFetcher, opts ...config.Option) (string, bool) {
	o := config.Apply(opts...)
	applyBareURLHint(input, o)
	if bareURL, ok := input.(string); ok && looksLikeBareURL(bareURL) && fetcher != nil {
		if html, fetched := fetcher.Fetch(ctx, bareURL); fetched {
			return find(html, fetcher, o)
		}
		return "", false
	}
	return find(input, fetcher, o)
}

// applyBareURLHint sets o.URL from input when input is itself a bare URL
// string and the caller didn't already supply one, per spec.md §4.7 step 1
// ("document string, parsed element tree, or URL string"). This runs
// whether or not a URLFetcher is available, so the URL probe still fires
// on a bare URL even when Find is called with no fetcher.
func applyBareURLHint(input any, o *config.Options) {
	if bareURL, ok := input.(string); ok && looksLikeBareURL(bareURL) && o.URL == "" {
		o.URL = bareURL
	}
}

func find(input any, _ URLFetcher, o *config.Options) (string, bool) {
	if !validate.OutputFormatValid(o.OutputFormat) {
		return "", false
	}
	bounds := validate.Bounds{Min: o.MinDate, Max: o.MaxDate}

	doc, ok := normalize(input)
	if !ok {
		return "", false
	}

	reference := o.MaxDate
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	if date, ok := header.Examine(doc, o.OriginalDate, bounds, o.OutputFormat, reference); ok {
		return finalize(date, o, bounds)
	}

	var urlCandidate string
	var urlOK bool
	probeURL := o.URL
	if probeURL == "" {
		probeURL = inferOGURL(doc)
	}
	if probeURL != "" {
		urlCandidate, urlOK = parse.ExtractPartialURLDate(probeURL, o.OutputFormat)
	}

	if date, ok := body.Examine(doc, o.OriginalDate, o.ExtensiveSearch, bounds, o.OutputFormat, reference); ok {
		return finalize(reconcileWithURL(date, urlCandidate, urlOK), o, bounds)
	}

	if !o.ExtensiveSearch {
		if urlOK {
			return finalize(urlCandidate, o, bounds)
		}
		return "", false
	}

	if date, ok := pattern.Search(pattern.CleanText(doc), o.OriginalDate, bounds, o.OutputFormat, reference); ok {
		return finalize(date, o, bounds)
	}

	if urlOK {
		return finalize(urlCandidate, o, bounds)
	}
	return "", false
}

// reconcileWithURL applies the §4.7 tie-break: a same-day URL date
// confirms the body date, and a conflicting URL year loses to it, so the
// body date always wins once found. The URL candidate only matters when
// the body produced nothing at all.
func reconcileWithURL(bodyDate, _ string, _ bool) string {
	return bodyDate
}

// finalize re-validates and reformats the winning date against the
// caller's bounds and output format, the Pipeline's final step. When a
// ReferenceTimestamp was supplied, it is weighed against the winner via
// compareReference before validation.
func finalize(date string, o *config.Options, bounds validate.Bounds) (string, bool) {
	if date == "" {
		return "", false
	}
	if !o.ReferenceTimestamp.IsZero() {
		date = compareReference(date, o.ReferenceTimestamp, o.OutputFormat)
	}
	if !validate.DateValid(date, o.OutputFormat, bounds) {
		return "", false
	}
	return date, true
}

// compareReference weighs a parsed candidate against an out-of-band
// reference timestamp (e.g. an HTTP Last-Modified header), keeping
// whichever is more specific: a candidate that only carries year
// precision (day and month both defaulted to 1, the Body/Header
// Examiners' copyright-year and bare-year shapes) loses to a reference
// timestamp that carries full day precision.
func compareReference(candidate string, reference time.Time, outputFormat string) string {
	layout, _, ok := validate.ToGoLayout(outputFormat)
	if !ok {
		return candidate
	}
	t, err := time.Parse(layout, candidate)
	if err != nil {
		return reference.Format(layout)
	}
	if t.Month() == time.January && t.Day() == 1 && !(reference.Month() == time.January && reference.Day() == 1) {
		return reference.Format(layout)
	}
	return candidate
}

// looksLikeBareURL reports whether s parses as a standalone URL rather
// than an HTML document: no "<" at all, and an http(s) scheme prefix.
func looksLikeBareURL(s string) bool {
	s = strings.TrimSpace(s)
	return !strings.Contains(s, "<") &&
		(strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://"))
}

// normalize converts input to a *goquery.Document, handling the string,
// io.Reader, and *goquery.Document cases of spec.md §3. It rejects
// nil/empty input, oversized input, and anything goquery cannot parse.
func normalize(input any) (*goquery.Document, bool) {
	switch v := input.(type) {
	case nil:
		return nil, false
	case *goquery.Document:
		return v, true
	case string:
		return parseHTML(v)
	case io.Reader:
		raw, err := io.ReadAll(io.LimitReader(v, MaxInputBytes+1))
		if err != nil {
			return nil, false
		}
		return parseHTML(string(raw))
	default:
		return nil, false
	}
}

func parseHTML(markup string) (*goquery.Document, bool) {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" || len(markup) > MaxInputBytes {
		return nil, false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, false
	}
	return doc, true
}

// inferOGURL reads <meta name="og:url"> as a fallback URL source when the
// caller didn't supply one, per spec.md §4.5 probe 7.
func inferOGURL(doc *goquery.Document) string {
	var found string
	doc.Find(`meta[name="og:url"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, exists := s.Attr("content"); exists && strings.TrimSpace(content) != "" {
			found = strings.TrimSpace(content)
			return false
		}
		return true
	})
	return found
}
