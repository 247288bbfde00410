package router

import (
	"net/http"
	"testing"

	"sales-dashboard/internal/cache"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /health",
		http.MethodPost + " /signup",
		http.MethodPost + " /login",
		http.MethodGet + " /profile/:user_id",
		http.MethodDelete + " /delete-account",
		http.MethodPost + " /predict",
		http.MethodGet + " /dashboard",
		http.MethodPost + " /load-dataset",
		http.MethodPost + " /train-model",
		http.MethodGet + " /aggregations/total-sales",
		http.MethodGet + " /aggregations/average-quantity",
		http.MethodGet + " /aggregations/median-amount",
		http.MethodGet + " /aggregations/top-items",
		http.MethodGet + " /aggregations/category-frequencies",
		http.MethodGet + " /aggregations/distribution-stats",
		http.MethodGet + " /aggregations/predictions-by-model",
		http.MethodGet + " /aggregations/top-users-predictions",
		http.MethodGet + " /aggregations/monthly-sales",
		http.MethodGet + " /swagger/*",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
	require.Equal(t, len(expected), len(got))
}
