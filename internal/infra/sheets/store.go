// Package sheets implements the ledger row store on a Google Sheets tab via
// the sheets/v4 API. Rows are pure appends; the sheet itself is the source
// of truth for ordering.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rafaelqm/donation-tracker/internal/ledger"
)

// Store reads and appends ledger rows on one spreadsheet tab.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// NewStore authenticates with the service-account JSON (the raw document,
// not a file path) and binds to the given spreadsheet tab.
func NewStore(ctx context.Context, spreadsheetID, tab string, credentialsJSON []byte) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("NewStore: create sheets service: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}, nil
}

// Append writes one ledger row after the last non-empty row of the tab.
func (s *Store) Append(ctx context.Context, row ledger.Row) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{row.Values()},
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.tab, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("Append: %w", err)
	}
	return nil
}

// Fetch returns a full snapshot of the tab: the header row and every data
// row below it. An empty or header-only tab yields no rows.
func (s *Store) Fetch(ctx context.Context) ([]string, [][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.tab).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("Fetch: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, nil, nil
	}

	header := toStrings(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, toStrings(raw))
	}
	return header, rows, nil
}

func toStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if s, ok := c.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(c)
	}
	return out
}
