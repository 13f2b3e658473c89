package ledger

import (
	"github.com/rafaelqm/donation-tracker/internal/parse"
)

// Filter selects ledger rows by exact match after trimming. Empty fields
// match every row.
type Filter struct {
	Period      string
	SubmitterID string
}

func (f Filter) matches(s Schema, row []string) bool {
	if f.Period != "" && Cell(row, s.Period) != f.Period {
		return false
	}
	if f.SubmitterID != "" && Cell(row, s.SubmitterID) != f.SubmitterID {
		return false
	}
	return true
}

// Aggregate is the transient sum over a filtered snapshot. Count zero means
// no row matched the filter, which is distinct from a schema error raised
// when binding the header.
type Aggregate struct {
	Count        int
	Profit       float64
	DonationUSDT float64
	DonationBRL  float64
}

// Summarize filters the snapshot rows and sums the three monetary columns.
// Rows shorter than the filter columns are skipped as malformed; missing or
// unparsable monetary cells contribute 0.
func Summarize(s Schema, rows [][]string, f Filter) Aggregate {
	var agg Aggregate
	for _, row := range rows {
		if !f.matches(s, row) {
			continue
		}
		agg.Count++
		agg.Profit += parse.ToFloat(Cell(row, s.Profit))
		agg.DonationUSDT += parse.ToFloat(Cell(row, s.DonationUSDT))
		agg.DonationBRL += parse.ToFloat(Cell(row, s.DonationBRL))
	}
	return agg
}

// Select returns the rows matching the filter, preserving sheet order
// (oldest first).
func Select(s Schema, rows [][]string, f Filter) [][]string {
	var out [][]string
	for _, row := range rows {
		if f.matches(s, row) {
			out = append(out, row)
		}
	}
	return out
}
