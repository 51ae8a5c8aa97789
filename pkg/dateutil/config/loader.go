package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// dateOnly is the layout project files use for min_date/max_date, kept
// separate from the caller-facing output_format since a config file is
// read by a human, not reformatted for one.
const dateOnly = "2006-01-02"

// Load reads an optional TOML project file (conventionally
// ".htmldate.toml") and merges it over Default(). An empty path is not an
// error: Load("") returns the defaults unchanged. A path naming a file that
// does not exist or does not parse is an error.
func Load(path string) (*Options, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	var parsed fileOptions
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	override := Default()
	if parsed.ExtensiveSearch != nil {
		override.ExtensiveSearch = *parsed.ExtensiveSearch
	}
	if parsed.OriginalDate != nil {
		override.OriginalDate = *parsed.OriginalDate
	}
	override.OutputFormat = parsed.OutputFormat
	override.URL = parsed.URL

	if parsed.MinDate != "" {
		t, err := time.Parse(dateOnly, parsed.MinDate)
		if err != nil {
			return nil, fmt.Errorf("config: %s: min_date: %w", path, err)
		}
		override.MinDate = t
	}
	if parsed.MaxDate != "" {
		t, err := time.Parse(dateOnly, parsed.MaxDate)
		if err != nil {
			return nil, fmt.Errorf("config: %s: max_date: %w", path, err)
		}
		override.MaxDate = t
	}

	return Merge(base, override), nil
}
