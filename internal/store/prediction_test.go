package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestPredictionCreate(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, "u1", args[0])
		require.Equal(t, 1, args[3])
		return fakeRow{vals: []any{int64(5), now}}
	}}
	p, err := CreatePrediction(context.Background(), db, &model.Prediction{
		UserID:       "u1",
		Quantity:     3,
		SalesPrice:   100,
		Prediction:   1,
		ModelVersion: "1.0",
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, p.ID)
	require.Equal(t, now, p.CreatedAt)

	db = &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: errors.New("down")}
	}}
	_, err = CreatePrediction(context.Background(), db, &model.Prediction{})
	require.Error(t, err)
}

func TestCountPredictions(t *testing.T) {
	db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{vals: []any{int64(9)}}
	}}
	count, err := CountPredictions(context.Background(), db)
	require.NoError(t, err)
	require.EqualValues(t, 9, count)
}
