// Package parse implements the date-discovery pipeline's Low-level
// Parsers (spec.md §4.2): CustomParse for compact numeric forms,
// RegexParseDE/RegexParseEN for locale long-forms, ExtractPartialURLDate
// for URL fragments, and TryFreeform for the natural-language fallback.
//
// Every parser here returns (string, bool) rather than an error: a
// fragment that does not match a given grammar is not a programmer error,
// it's an expected "try the next parser" signal, per spec.md §7's
// AmbiguousParse policy.
package parse
