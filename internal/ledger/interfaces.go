package ledger

import "context"

// RowStore is the append-only persistence collaborator. Append writes one
// row; Fetch returns a full snapshot (header plus data rows) taken at call
// time. Concurrent appends landing after a snapshot are acceptable.
type RowStore interface {
	Append(ctx context.Context, row Row) error
	Fetch(ctx context.Context) (header []string, rows [][]string, err error)
}
