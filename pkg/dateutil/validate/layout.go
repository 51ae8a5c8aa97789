package validate

import "strings"

// directives maps the strftime-style tokens accepted by this library to the
// reference-time tokens Go's time package expects. Unknown directives are
// rejected by ToGoLayout rather than passed through, matching the
// output_format_validator policy of rejecting unrecognized directives.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'B': "January",
	'b': "Jan",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'z': "-0700",
	'Z': "MST",
	'%': "%",
}

// ToGoLayout converts a strftime-style pattern (e.g. "%Y-%m-%d") into a Go
// reference-time layout (e.g. "2006-01-02"). ok is false when the pattern
// contains a dangling '%' or a directive not in the supported table.
func ToGoLayout(format string) (layout string, directiveCount int, ok bool) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			return "", 0, false
		}
		tok, known := directives[format[i]]
		if !known {
			return "", 0, false
		}
		b.WriteString(tok)
		if format[i] != '%' {
			directiveCount++
		}
	}
	return b.String(), directiveCount, true
}
