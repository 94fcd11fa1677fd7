package constants

import "strings"

// priceLevels maps the qualitative price symbol reported by providers to the
// integer level stored on a listing. Anything unrecognized maps to 0 (unknown).
var priceLevels = map[string]int{
	"$":    1,
	"$$":   2,
	"$$$":  3,
	"$$$$": 4,
}

// PriceLevel converts a price symbol ("$".."$$$$") to its integer level 1-4.
// Empty or unmapped input returns 0.
func PriceLevel(symbol string) int {
	return priceLevels[strings.TrimSpace(symbol)]
}

// PriceSymbol is the inverse mapping, used when rendering admin exports.
func PriceSymbol(level int) string {
	if level < 1 || level > 4 {
		return ""
	}
	return strings.Repeat("$", level)
}
