package bot

import (
	"regexp"
	"strconv"
	"strings"
)

var numberToken = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// numbers extracts every decimal-shaped token from free-form command
// arguments, in order. Users write things like "1000 USD 10 meses aporte
// 100"; everything that is not a number is ignored.
func numbers(args string) []float64 {
	var out []float64
	for _, tok := range numberToken.FindAllString(strings.ToLower(args), -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", "."), 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// maxProjectionMonths bounds simulation length; anything longer produces a
// series nobody can read and overflows float64 anyway.
const maxProjectionMonths = 1200

// checkProjection validates projection arguments. Negative amounts and
// oversized month counts are usage errors carrying the command help.
func checkProjection(help string, months int, amounts ...float64) error {
	if months > maxProjectionMonths {
		return &UsageError{Help: "Máximo de 1200 meses por simulação.\n\n" + help}
	}
	for _, a := range amounts {
		if a < 0 {
			return &UsageError{Help: "Os valores não podem ser negativos.\n\n" + help}
		}
	}
	return nil
}
