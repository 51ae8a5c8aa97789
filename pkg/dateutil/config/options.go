// Package config provides configuration loading and management for the
// date-discovery pipeline: package defaults, an optional TOML project
// file, and functional options layered on top, mirroring the precedence
// chain markata-go's own config package uses for its site settings.
package config

import "time"

// Options is the Go representation of the library's Configuration block.
type Options struct {
	ExtensiveSearch bool
	OriginalDate    bool
	OutputFormat    string
	URL             string
	MinDate         time.Time
	MaxDate         time.Time

	// ReferenceTimestamp supplements the URL probe with an out-of-band
	// signal (e.g. an HTTP Last-Modified header converted to a time),
	// weighed against parsed candidates by finddate.compareReference.
	ReferenceTimestamp time.Time
}

// Default returns the package's built-in defaults: extensive search
// enabled, last-modification preferred over publication, ISO output, and
// a lower bound of 1995-01-01 (the web's practical beginning) through
// today.
func Default() *Options {
	return &Options{
		ExtensiveSearch: true,
		OriginalDate:    false,
		OutputFormat:    "%Y-%m-%d",
		MinDate:         time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaxDate:         time.Now().UTC(),
	}
}

// Option mutates an Options in place, applied in the order passed to
// finddate.Find.
type Option func(*Options)

// WithExtensiveSearch toggles the free-text fallback tiers (the Body
// Examiner's free-text patterns and the Pattern Searcher). The URL probe
// runs either way.
func WithExtensiveSearch(enabled bool) Option {
	return func(o *Options) { o.ExtensiveSearch = enabled }
}

// WithOriginalDate requests the earliest plausible (publication) date
// instead of the latest (last-modification) date.
func WithOriginalDate(original bool) Option {
	return func(o *Options) { o.OriginalDate = original }
}

// WithOutputFormat sets the strftime-style pattern results are rendered
// under.
func WithOutputFormat(format string) Option {
	return func(o *Options) { o.OutputFormat = format }
}

// WithURL supplies a URL to probe when the body lacks structured
// evidence, or to supplement it via og:url inference.
func WithURL(url string) Option {
	return func(o *Options) { o.URL = url }
}

// WithDateBounds clamps accepted dates to [min, max].
func WithDateBounds(min, max time.Time) Option {
	return func(o *Options) {
		o.MinDate = min
		o.MaxDate = max
	}
}

// WithReferenceTimestamp supplies an out-of-band timestamp (such as an
// HTTP Last-Modified header) to weigh against parsed candidates.
func WithReferenceTimestamp(t time.Time) Option {
	return func(o *Options) { o.ReferenceTimestamp = t }
}

// Apply returns a copy of Default() with every opt applied in order.
func Apply(opts ...Option) *Options {
	o := Default()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
