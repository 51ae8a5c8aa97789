package config

// Merge layers override on top of base: the CLI uses this to apply flags
// over a loaded project file over the package defaults, the same
// precedence chain markata-go's MergeConfigs applies to site settings.
// String and time fields take the override value only when it is set
// (non-empty / non-zero); bool fields always take the override, since a
// caller-supplied Options already carries a resolved default for any
// field it didn't explicitly set.
func Merge(base, override *Options) *Options {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	result.ExtensiveSearch = override.ExtensiveSearch
	result.OriginalDate = override.OriginalDate

	if override.OutputFormat != "" {
		result.OutputFormat = override.OutputFormat
	}
	if override.URL != "" {
		result.URL = override.URL
	}
	if !override.MinDate.IsZero() {
		result.MinDate = override.MinDate
	}
	if !override.MaxDate.IsZero() {
		result.MaxDate = override.MaxDate
	}
	if !override.ReferenceTimestamp.IsZero() {
		result.ReferenceTimestamp = override.ReferenceTimestamp
	}

	return &result
}
