package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sales-dashboard/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = r.vals[i].(int64)
		case *float64:
			*d = r.vals[i].(float64)
		case *string:
			*d = r.vals[i].(string)
		default:
			panic("fakeRow.Scan: unsupported dest")
		}
	}
	return nil
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	r.idx++
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = row[i].(int64)
		case *float64:
			*d = row[i].(float64)
		case *string:
			*d = row[i].(string)
		default:
			panic("fakeRows.Scan: unsupported dest")
		}
	}
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// dashboardFakeDB 依 SQL 內容分流回應，模擬整組聚合查詢
func dashboardFakeDB() *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "SUM(amount)"):
				return fakeRow{vals: []any{350.0, int64(3)}}
			case strings.Contains(sql, "AVG(quantity)"):
				return fakeRow{vals: []any{2.0, 1.0, 3.0}}
			case strings.Contains(sql, "ORDER BY quantity"):
				return fakeRow{vals: []any{2.0}}
			case strings.Contains(sql, "COUNT(*) FROM dataset"):
				return fakeRow{vals: []any{int64(3)}}
			default:
				panic("unexpected QueryRow: " + sql)
			}
		},
		QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			switch {
			case strings.Contains(sql, "GROUP BY invoice_type"):
				return &fakeRows{data: [][]any{{"Invoice", int64(2), 300.0}, {"Refund", int64(1), 50.0}}}, nil
			case strings.Contains(sql, "GROUP BY item"):
				return &fakeRows{data: [][]any{{"C", 200.0, 2.0, int64(1)}, {"A", 150.0, 3.0, int64(2)}}}, nil
			case strings.Contains(sql, "SELECT amount FROM dataset"):
				return &fakeRows{data: [][]any{{100.0}, {200.0}, {50.0}}}, nil
			default:
				panic("unexpected Query: " + sql)
			}
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	d, err := BuildDashboard(context.Background(), dashboardFakeDB())
	require.NoError(t, err)

	require.Equal(t, 350.0, d.Stats.TotalSales)
	require.Equal(t, int64(3), d.Stats.InvoiceCount)
	require.Equal(t, 2.0, d.Stats.AverageQuantity)
	require.Equal(t, 2.0, d.Stats.MedianQuantity)
	require.Equal(t, int64(2), d.Stats.CategoryFrequencies["Invoice"])

	// 三張圖皆須渲染成 base64 PNG
	require.NotNil(t, d.Charts.ItemSales)
	require.NotNil(t, d.Charts.AmountDistribution)
	require.NotNil(t, d.Charts.CategoryBreakdown)
	require.NotEmpty(t, *d.Charts.ItemSales)
}

func TestBuildDashboardEmptyDataset(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return fakeRow{vals: []any{int64(0)}}
		},
	}
	d, err := BuildDashboard(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, 0.0, d.Stats.TotalSales)
	require.Equal(t, int64(0), d.Stats.InvoiceCount)
	require.Nil(t, d.Charts.ItemSales)
	require.Nil(t, d.Charts.AmountDistribution)
}

func TestBuildDashboardStoreError(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return fakeRow{err: errors.New("down")}
		},
	}
	_, err := BuildDashboard(context.Background(), db)
	require.Error(t, err)
}
