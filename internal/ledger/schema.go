package ledger

import (
	"fmt"
	"strings"
)

// Schema binds the header labels the bot reads back to their column
// positions. It is validated once per snapshot fetch so that a renamed or
// missing column surfaces as a typed error instead of silently reading the
// wrong cell.
type Schema struct {
	Timestamp    int
	SubmitterID  int
	City         int
	AccountID    int
	Period       int
	Profit       int
	DonationUSDT int
	DonationBRL  int
}

// ErrColumnNotFound reports a header label the sheet no longer carries.
type ErrColumnNotFound struct {
	Column string
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column %q not found in sheet header", e.Column)
}

// BindSchema locates every required column in the header. Labels are
// compared after trimming, matching how the sheet header is maintained by
// hand.
func BindSchema(header []string) (Schema, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	var s Schema
	for _, bind := range []struct {
		label string
		dst   *int
	}{
		{ColTimestamp, &s.Timestamp},
		{ColSubmitterID, &s.SubmitterID},
		{ColCity, &s.City},
		{ColAccountID, &s.AccountID},
		{ColPeriod, &s.Period},
		{ColProfit, &s.Profit},
		{ColDonationUSDT, &s.DonationUSDT},
		{ColDonationBRL, &s.DonationBRL},
	} {
		i, ok := index[bind.label]
		if !ok {
			return Schema{}, &ErrColumnNotFound{Column: bind.label}
		}
		*bind.dst = i
	}
	return s, nil
}

// Cell reads one column from a raw row, returning "" when the row is too
// short. Short rows come from trailing empty cells the sheet API omits.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
