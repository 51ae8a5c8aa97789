// Package body implements the Body Examiner (spec.md §4.6): it scans the
// document body for structured date hints — <time> elements, abbr/class
// markers, JSON fragments — before the Pattern Searcher falls back to
// free text.
package body

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/dateforge/htmldate/pkg/dateutil/parse"
	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// classHintSelector is a compiled selector over every class/itemprop hint
// token in dateClasses, built once at package init so fromClassHints does
// not reparse a CSS string on every call.
var classHintSelector = compileClassHintSelector()

func compileClassHintSelector() cascadia.Sel {
	parts := make([]string, 0, len(dateClasses)*2)
	for _, token := range dateClasses {
		parts = append(parts, "[class*='"+token+"']", "[itemprop*='"+token+"']")
	}
	sel, err := cascadia.Parse(strings.Join(parts, ", "))
	if err != nil {
		return nil
	}
	return sel
}

// dateClasses lists class/itemprop tokens treated as carrying a date,
// ordered by how strongly they imply publication vs. generic metadata.
var dateClasses = []string{
	"entry-date", "entry-time", "post-date", "postdate", "publishdate",
	"published", "date-published", "byline", "article-date", "post-meta-time",
}

var jsonDateField = regexp.MustCompile(`"date(?:Published|Modified)"\s*:\s*"([^"]+)"`)

var labeledDate = regexp.MustCompile(`(?i)(?:Stand|Datum|Updated|Published)\s*[:\-]?\s*([^<\n]{4,30})`)

var copyrightLine = regexp.MustCompile(`©\s*(?:[A-Za-z .]*\s)?(\d{4})\b|Copyright\s*©?\s*(?:[A-Za-z .]*\s)?(\d{4})\b`)

// Examine scans doc's body for a date under outputFormat. original picks
// which <time> element wins when several are present (§4.6 tier 1).
// extensiveSearch gates the lowest-confidence tier (free-text
// Stand:/Datum:/© patterns); when it is false only the structured tiers
// run.
func Examine(doc *goquery.Document, original, extensiveSearch bool, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	body := doc.Find("body")

	if date, ok := fromTimeElements(body, original, bounds, outputFormat, reference); ok {
		return date, true
	}
	if date, ok := fromAbbr(body, bounds, outputFormat, reference); ok {
		return date, true
	}
	if date, ok := fromClassHints(body, bounds, outputFormat, reference); ok {
		return date, true
	}
	if date, ok := fromJSON(body, bounds, outputFormat, reference); ok {
		return date, true
	}
	if !extensiveSearch {
		return "", false
	}
	return fromFreeText(body, bounds, outputFormat, reference)
}

// fromTimeElements reads the datetime attribute of each <time> element
// (or its content attribute when datetime is absent); the element's text
// is not consulted. The attribute value is not restricted to ISO form: it
// goes through the full parse.Any cascade, including the natural-language
// fallback. When a document carries more
// than one valid <time>, the first one wins when original is true (the
// earliest declared date, i.e. publication), the last one otherwise (the
// most recently declared, i.e. last-modification).
func fromTimeElements(body *goquery.Selection, original bool, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	var dates []string
	body.Find("time").Each(func(_ int, s *goquery.Selection) {
		datetime, exists := s.Attr("datetime")
		if !exists {
			datetime, exists = s.Attr("content")
		}
		if !exists || strings.TrimSpace(datetime) == "" {
			return
		}
		if date, ok := parse.Any(strings.TrimSpace(datetime), outputFormat, bounds, reference); ok {
			dates = append(dates, date)
		}
	})
	if len(dates) == 0 {
		return "", false
	}
	if original {
		return dates[0], true
	}
	return dates[len(dates)-1], true
}

// fromAbbr reads <abbr class="published|date-published" ...> and the
// data-utime epoch-seconds convention. A malformed data-utime value (not
// a pure integer) is a hard reject, not a fallthrough to text parsing.
func fromAbbr(body *goquery.Selection, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	var result string
	var found bool
	body.Find("abbr").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if utime, exists := s.Attr("data-utime"); exists {
			seconds, err := strconv.ParseInt(strings.TrimSpace(utime), 10, 64)
			if err != nil {
				return true
			}
			date, ok := renderTime(time.Unix(seconds, 0).UTC(), bounds, outputFormat)
			if ok {
				result, found = date, true
				return false
			}
			return true
		}
		class, _ := s.Attr("class")
		if !hasDateClass(class) {
			return true
		}
		date, ok := parse.Any(strings.TrimSpace(s.Text()), outputFormat, bounds, reference)
		if !ok {
			return true
		}
		result, found = date, true
		return false
	})
	return result, found
}

// fromClassHints scans elements carrying a recognized date class or
// itemprop and parses their text content. The hint list is matched via a
// precompiled cascadia selector run directly against the body's nodes,
// rather than goquery's own (string-reparsed) CSS engine.
func fromClassHints(body *goquery.Selection, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	if classHintSelector == nil || len(body.Nodes) == 0 {
		return "", false
	}
	for _, root := range body.Nodes {
		for _, n := range cascadia.QueryAll(root, classHintSelector) {
			date, ok := parse.Any(strings.TrimSpace(goquery.NewDocumentFromNode(n).Text()), outputFormat, bounds, reference)
			if ok {
				return date, true
			}
		}
	}
	return "", false
}

// fromJSON looks for inline "datePublished"/"dateModified" fields, as
// found in JSON-LD or other embedded script payloads that goquery leaves
// as plain text.
func fromJSON(body *goquery.Selection, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	html, err := body.Html()
	if err != nil {
		return "", false
	}
	m := jsonDateField.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return parse.Any(m[1], outputFormat, bounds, reference)
}

// fromFreeText is the lowest-confidence tier: Stand:/Datum:/Updated: label
// patterns and bare copyright-year lines.
func fromFreeText(body *goquery.Selection, bounds validate.Bounds, outputFormat string, reference time.Time) (string, bool) {
	text := body.Text()
	if m := labeledDate.FindStringSubmatch(text); m != nil {
		if date, ok := parse.Any(strings.TrimSpace(m[1]), outputFormat, bounds, reference); ok {
			return date, true
		}
	}
	if m := copyrightLine.FindStringSubmatch(text); m != nil {
		year := m[1]
		if year == "" {
			year = m[2]
		}
		return yearOnly(year, bounds, outputFormat)
	}
	return "", false
}

// yearOnly builds January 1st of year directly, the way a bare copyright
// year is dated per spec.md §8 scenario 6 — routing it through parse.Any
// instead would let the natural-language fallback fill the missing month
// from the caller's reference date instead of defaulting it to January.
func yearOnly(year string, bounds validate.Bounds, outputFormat string) (string, bool) {
	digits := strings.TrimSpace(year)
	if len(digits) != 4 {
		return "", false
	}
	out, err := validate.Convert(digits+"-01-01", "%Y-%m-%d", outputFormat)
	if err != nil || !validate.DateValid(out, outputFormat, bounds) {
		return "", false
	}
	return out, true
}

func hasDateClass(attr string) bool {
	if attr == "" {
		return false
	}
	lower := strings.ToLower(attr)
	for _, token := range dateClasses {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func renderTime(t time.Time, bounds validate.Bounds, outputFormat string) (string, bool) {
	key := t.Format("2006-01-02")
	out, err := validate.Convert(key, "%Y-%m-%d", outputFormat)
	if err != nil || !validate.DateValid(out, outputFormat, bounds) {
		return "", false
	}
	return out, true
}
