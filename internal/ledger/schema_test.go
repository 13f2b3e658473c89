package ledger

import (
	"errors"
	"testing"
)

func TestBindSchema(t *testing.T) {
	s, err := BindSchema(Header)
	if err != nil {
		t.Fatalf("BindSchema(Header) failed: %v", err)
	}

	if s.Timestamp != 0 || s.SubmitterID != 1 || s.Period != 6 {
		t.Errorf("unexpected positions: %+v", s)
	}
	if s.Profit != 11 || s.DonationUSDT != 12 || s.DonationBRL != 14 {
		t.Errorf("unexpected monetary positions: %+v", s)
	}
}

func TestBindSchema_TrimsHeaderCells(t *testing.T) {
	header := make([]string, len(Header))
	for i, h := range Header {
		header[i] = "  " + h + " "
	}
	if _, err := BindSchema(header); err != nil {
		t.Errorf("BindSchema with padded header failed: %v", err)
	}
}

func TestBindSchema_MissingColumn(t *testing.T) {
	header := []string{ColTimestamp, ColSubmitterID, ColPeriod}

	_, err := BindSchema(header)
	if err == nil {
		t.Fatal("expected error for incomplete header")
	}

	var colErr *ErrColumnNotFound
	if !errors.As(err, &colErr) {
		t.Fatalf("expected *ErrColumnNotFound, got %T", err)
	}
	if colErr.Column == "" {
		t.Error("expected the missing column name to be reported")
	}
}

func TestCell(t *testing.T) {
	row := []string{"a", " b ", ""}

	tests := []struct {
		idx  int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{2, ""},
		{3, ""},  // short row
		{-1, ""}, // defensive
	}

	for _, tt := range tests {
		if got := Cell(row, tt.idx); got != tt.want {
			t.Errorf("Cell(row, %d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestRowValues_Rounding(t *testing.T) {
	r := Row{
		Timestamp:    "01/02/2026 10:30",
		SubmitterID:  "12345",
		Submitter:    "@joao",
		Period:       "02/2026",
		Initial:      500.006,
		Deposit:      60.354,
		Withdraw:     24,
		Final:        522.65,
		Profit:       -13.699999,
		DonationUSDT: 0,
		Rate:         5.43217,
		DonationBRL:  0,
	}

	values := r.Values()
	if len(values) != len(Header) {
		t.Fatalf("Values() length = %d, want %d", len(values), len(Header))
	}

	if got := values[7].(float64); got != 500.01 {
		t.Errorf("initial rounded = %v, want 500.01", got)
	}
	if got := values[8].(float64); got != 60.35 {
		t.Errorf("deposit rounded = %v, want 60.35", got)
	}
	if got := values[11].(float64); got != -13.7 {
		t.Errorf("profit rounded = %v, want -13.7", got)
	}
	if got := values[13].(float64); got != 5.4322 {
		t.Errorf("rate rounded = %v, want 5.4322 (four decimals)", got)
	}
}
