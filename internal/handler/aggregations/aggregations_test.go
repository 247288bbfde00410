package aggregations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-dashboard/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
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
	assign(r.vals, dest)
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
	assign(r.data[r.idx], dest)
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func assign(vals []any, dest []any) {
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = vals[i].(int64)
		case *float64:
			*d = vals[i].(float64)
		case *string:
			*d = vals[i].(string)
		default:
			panic("fake scan: unsupported dest type")
		}
	}
}

func newGetCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTotalSalesHandler(t *testing.T) {
	e := echo.New()

	ctx, rec := newGetCtx(e, "/")
	h := TotalSalesHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{vals: []any{1234.5, int64(42)}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total_sales":1234.5`)
	require.Contains(t, rec.Body.String(), `"success":true`)

	// store failure
	ctx, rec = newGetCtx(e, "/")
	h = TotalSalesHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: errors.New("down")}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAverageQuantityHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/")
	h := AverageQuantityHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{vals: []any{2.5, 1.0, 9.0}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"average_quantity":2.5`)
}

func TestMedianAmountHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/")
	calls := 0
	h := MedianAmountHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		calls++
		if calls == 1 {
			return fakeRow{vals: []any{int64(4)}}
		}
		return fakeRow{vals: []any{30.0}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"median_amount":30`)
}

func TestTopItemsHandler(t *testing.T) {
	e := echo.New()

	// limit 參數應傳進查詢
	ctx, rec := newGetCtx(e, "/?limit=3")
	h := TopItemsHandler(&database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		require.Equal(t, 3, args[0])
		return &fakeRows{data: [][]any{
			{"Widget", 200.0, 4.0, int64(2)},
			{"Gadget", 100.0, 1.0, int64(1)},
		}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Widget")

	// 無效的 limit 回落到預設值
	ctx, rec = newGetCtx(e, "/?limit=abc")
	h = TopItemsHandler(&database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		require.Equal(t, 10, args[0])
		return &fakeRows{}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryFrequenciesHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/")
	h := CategoryFrequenciesHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{{"Retail", int64(5), 500.0}}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Retail")
}

func TestDistributionStatsHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/")
	h := DistributionStatsHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{vals: []any{int64(10), 55.0, 5.0, 400.0, 2.2, 30.0}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":10`)
}

func TestPredictionsByModelHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/")
	h := PredictionsByModelHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{{"1.0", int64(8)}}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"model_version":"1.0"`)
}

func TestTopUsersPredictionsHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/?limit=5")
	h := TopUsersPredictionsHandler(&database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		require.Equal(t, 5, args[0])
		return &fakeRows{data: [][]any{{"u1", int64(3)}}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"prediction_count":3`)
}

func TestMonthlySalesHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newGetCtx(e, "/")
	h := MonthlySalesHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{
			{"2024-01", 100.0, int64(2)},
			{"2024-02", 30.0, int64(1)},
		}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "2024-01")
}
