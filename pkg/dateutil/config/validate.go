package config

import (
	"net/url"

	"github.com/dateforge/htmldate/pkg/dateutil/validate"
)

// Validate checks o for defects a caller would want surfaced before
// running the pipeline: an unparseable URL, an inverted date range, or an
// output format with no recognized directive. The returned slice is nil
// when o is sound.
func Validate(o *Options) []error {
	if o == nil {
		return []error{&ValidationError{Field: "options", Message: "nil"}}
	}

	var errs []error

	if o.URL != "" {
		if parsed, err := url.Parse(o.URL); err != nil || parsed.Host == "" {
			errs = append(errs, &ValidationError{Field: "url", Message: "not a valid absolute URL"})
		}
	}

	if !validate.OutputFormatValid(o.OutputFormat) {
		errs = append(errs, &ValidationError{Field: "output_format", Message: "no recognized directive"})
	}

	if !o.MinDate.IsZero() && !o.MaxDate.IsZero() && o.MaxDate.Before(o.MinDate) {
		errs = append(errs, &ValidationError{Field: "min_date/max_date", Message: "max_date precedes min_date"})
	}

	return errs
}
