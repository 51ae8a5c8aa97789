package parse

// germanMonths maps lower-cased German month names (plus the ASCII
// spelling "maerz") to their calendar number.
var germanMonths = map[string]int{
	"januar":    1,
	"februar":   2,
	"märz":      3,
	"maerz":     3,
	"april":     4,
	"mai":       5,
	"juni":      6,
	"juli":      7,
	"august":    8,
	"september": 9,
	"oktober":   10,
	"november":  11,
	"dezember":  12,
}
