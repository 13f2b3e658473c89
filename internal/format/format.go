// Package format renders monetary values and projection series for chat
// display. Values are shown in Brazilian notation (1.234,56); this is purely
// visual, storage keeps plain floats.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rafaelqm/donation-tracker/internal/finance"
)

// displayMonths caps how many series entries are rendered; the engine still
// computes the full series.
const displayMonths = 12

// Money renders v with two decimals, "." grouping and "," decimal point.
func Money(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// GrowthSeries renders the month-by-month balances of a growth projection,
// capped at the first 12 months with a "+N meses" marker for the rest.
func GrowthSeries(series []finance.Point, monthsTotal int) string {
	var lines []string
	limit := min(displayMonths, len(series))
	for i := 0; i < limit; i++ {
		p := series[i]
		lines = append(lines, fmt.Sprintf("M%d: %s USDT", p.Month, Money(p.Balance)))
	}
	if monthsTotal > displayMonths {
		lines = append(lines, fmt.Sprintf("... (+%d meses)", monthsTotal-displayMonths))
	}
	return strings.Join(lines, "\n")
}

// WithdrawSeries renders the half-profit withdrawal projection, one line per
// month with the balance and the amount withdrawn.
func WithdrawSeries(series []finance.WithdrawPoint, monthsTotal int) string {
	var lines []string
	limit := min(displayMonths, len(series))
	for i := 0; i < limit; i++ {
		p := series[i]
		lines = append(lines, fmt.Sprintf("M%d: saldo %s | sacado %s", p.Month, Money(p.Balance), Money(p.Withdrawn)))
	}
	if monthsTotal > displayMonths {
		lines = append(lines, fmt.Sprintf("... (+%d meses)", monthsTotal-displayMonths))
	}
	return strings.Join(lines, "\n")
}
