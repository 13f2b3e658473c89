package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Currency markers that may surround a numeric token in user input.
// "USDT" must be stripped before "USD" or a stray "T" is left behind.
var currencyMarkers = []string{"R$", "USDT", "USD"}

var (
	brDecimalPattern = regexp.MustCompile(`\d+,\d+`)
	numberPattern    = regexp.MustCompile(`-?\d+(\.\d+)?`)
)

// ToFloat converts a loosely formatted numeric string into a float64.
// It accepts both Brazilian notation (1.234,56) and plain notation (1234.56):
// a comma directly followed by digits marks the comma as the decimal point,
// otherwise any comma is treated as a decimal-point substitute.
// Bad input never fails; it degrades to 0.
func ToFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.TrimSpace(s)

	if brDecimalPattern.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}

	token := numberPattern.FindString(s)
	if token == "" {
		return 0
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return v
}
