package config

import "fmt"

// ValidationError reports one defect found while validating an Options
// value loaded from a project file.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// fileOptions is the TOML-serializable shadow of Options: a project file
// only ever overrides a subset of fields, and zero-value fields (empty
// string, zero time) are left for Merge to fill from the base.
type fileOptions struct {
	ExtensiveSearch *bool  `toml:"extensive_search"`
	OriginalDate    *bool  `toml:"original_date"`
	OutputFormat    string `toml:"output_format"`
	URL             string `toml:"url"`
	MinDate         string `toml:"min_date"`
	MaxDate         string `toml:"max_date"`
}
