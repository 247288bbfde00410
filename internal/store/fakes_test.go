package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，依 dest 型別逐欄指派，用於模擬單筆掃描。
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	assign(r.vals, dest)
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	assign(r.data[r.idx], dest)
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func assign(vals []any, dest []any) {
	if len(vals) != len(dest) {
		panic("fake scan: unexpected number of dest")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = vals[i].(int)
		case *int64:
			*d = vals[i].(int64)
		case *float64:
			*d = vals[i].(float64)
		case *string:
			*d = vals[i].(string)
		case *time.Time:
			*d = vals[i].(time.Time)
		case *uuid.UUID:
			*d = vals[i].(uuid.UUID)
		case *[]byte:
			*d = vals[i].([]byte)
		default:
			panic("fake scan: unsupported dest type")
		}
	}
}
