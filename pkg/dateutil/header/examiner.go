// Package header implements the Header Examiner (spec.md §4.5): it scans
// <meta> tags under a priority-ordered table of probes for publication and
// modification date candidates.
package header

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"

	"github.com/dateforge/htmldate/pkg/dateutil/parse"
	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

var fold = cases.Fold()

// role classifies what a probe hit means to the cascade: a clear
// publication or modification signal, or a generic date with no implied
// role.
type role int

const (
	roleGeneric role = iota
	rolePublication
	roleModification
	roleCopyrightYear
	roleURL
)

// probe is one (matcher, extractor) pair from spec.md §4.5's priority list.
type probe struct {
	attr   string // meta attribute name holding the probe key, or "pubdate" for the bare boolean attribute
	values []string
	role   role
}

// probes mirrors spec.md §4.5 groups 1-7, in priority order.
var probes = []probe{
	{attr: "property", role: rolePublication, values: []string{
		"article:published_time", "bday:date", "og:published_time",
		"og:article:published_time", "og:original_time", "dc:created", "dc:date",
		"dcterms.created",
	}},
	{attr: "property", role: roleModification, values: []string{
		"og:updated_time", "dc:modified", "dcterms.modified", "lastmod",
	}},
	{attr: "name", role: roleGeneric, values: []string{
		"date", "pubdate", "publishdate", "publication_date", "date_published",
		"datepublished", "created", "datecreated", "datemodified",
		"last-modified", "last_updated",
	}},
	{attr: "itemprop", role: roleGeneric, values: []string{
		"date", "pubdate", "publishdate", "publication_date", "date_published",
		"datepublished", "created", "datecreated", "datemodified",
		"last-modified", "last_updated",
	}},
	{attr: "http-equiv", role: roleGeneric, values: []string{"last-modified"}},
	{attr: "pubdate", role: roleGeneric, values: nil},
	{attr: "itemprop", role: roleCopyrightYear, values: []string{"copyrightyear"}},
	{attr: "name", role: roleURL, values: []string{"og:url"}},
}

// Examine scans doc's <meta> tags per spec.md §4.5 and returns the winning
// date under outputFormat. When both a publication and a modification
// candidate are found, the earliest is preferred when original is true,
// the latest otherwise; absent either, the remaining probes are consulted
// in priority order and the first hit wins.
func Examine(doc *goquery.Document, original bool, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	metas := doc.Find("meta")

	pub, pubOK := matchRole(metas, rolePublication, bounds, outputFormat, reference)
	mod, modOK := matchRole(metas, roleModification, bounds, outputFormat, reference)

	switch {
	case pubOK && modOK:
		if original {
			return earlier(pub, mod, outputFormat)
		}
		return later(pub, mod, outputFormat)
	case pubOK:
		return pub, true
	case modOK:
		return mod, true
	}

	for _, p := range probes {
		if p.role == rolePublication || p.role == roleModification {
			continue
		}
		if date, ok := matchProbe(metas, p, bounds, outputFormat, reference); ok {
			return date, true
		}
	}
	return "", false
}

// matchRole scans every probe carrying the given role and returns the
// first match, in probe-table order.
func matchRole(metas *goquery.Selection, want role, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	for _, p := range probes {
		if p.role != want {
			continue
		}
		if date, ok := matchProbe(metas, p, bounds, outputFormat, reference); ok {
			return date, true
		}
	}
	return "", false
}

func matchProbe(metas *goquery.Selection, p probe, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	var result string
	var found bool
	metas.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if p.attr == "pubdate" && len(p.values) == 0 {
			if _, exists := s.Attr("pubdate"); !exists {
				return true
			}
		} else {
			value, exists := s.Attr(p.attr)
			if !exists || !containsFold(p.values, value) {
				return true
			}
		}
		date, ok := extract(s, p.role, bounds, outputFormat, reference)
		if !ok {
			return true
		}
		result, found = date, true
		return false
	})
	return result, found
}

// extract reads content, then datetime, then the element's own text, and
// parses whichever is non-empty first.
func extract(s *goquery.Selection, r role, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	value := readValue(s)
	if value == "" {
		return "", false
	}
	switch r {
	case roleCopyrightYear:
		return copyrightYear(value, bounds, outputFormat)
	case roleURL:
		return parse.ExtractPartialURLDate(value, outputFormat)
	default:
		return parse.Any(value, outputFormat, bounds, reference)
	}
}

func readValue(s *goquery.Selection) string {
	if content, exists := s.Attr("content"); exists && strings.TrimSpace(content) != "" {
		return strings.TrimSpace(content)
	}
	if datetime, exists := s.Attr("datetime"); exists && strings.TrimSpace(datetime) != "" {
		return strings.TrimSpace(datetime)
	}
	return strings.TrimSpace(s.Text())
}

func copyrightYear(value string, bounds validate.Bounds, outputFormat string) (string, bool) {
	digitsOnly := strings.TrimSpace(value)
	if len(digitsOnly) != 4 {
		return "", false
	}
	out, err := validate.Convert(digitsOnly+"-01-01", "%Y-%m-%d", outputFormat)
	if err != nil || !validate.DateValid(out, outputFormat, bounds) {
		return "", false
	}
	return out, true
}

func containsFold(values []string, v string) bool {
	folded := fold.String(strings.TrimSpace(v))
	for _, want := range values {
		if fold.String(want) == folded {
			return true
		}
	}
	return false
}

func earlier(a, b, outputFormat string) (string, bool) {
	layout, _, _ := validate.ToGoLayout(outputFormat)
	ta, errA := parseLayout(layout, a)
	tb, errB := parseLayout(layout, b)
	if errA != nil || errB != nil {
		return a, true
	}
	if tb.Before(ta) {
		return b, true
	}
	return a, true
}

func later(a, b, outputFormat string) (string, bool) {
	layout, _, _ := validate.ToGoLayout(outputFormat)
	ta, errA := parseLayout(layout, a)
	tb, errB := parseLayout(layout, b)
	if errA != nil || errB != nil {
		return a, true
	}
	if tb.After(ta) {
		return b, true
	}
	return a, true
}

func parseLayout(layout, value string) (time.Time, error) {
	return time.Parse(layout, value)
}
