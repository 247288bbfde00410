// File: internal/handler/dashboard.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"sales-dashboard/internal/analytics"
	"sales-dashboard/internal/cache"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/worker"

	"github.com/labstack/echo/v4"
)

const (
	dashboardCacheKey = "dashboard:v1"
	dashboardCacheTTL = time.Minute
)

// DashboardHandler 回傳儀表板統計與圖表
// @Summary     Dashboard
// @Description 彙整統計數字並渲染圖表，結果以短 TTL 快取於 Redis
// @Tags        analytics
// @Produce     json
// @Success     200 {object} analytics.Dashboard
// @Failure     500 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /dashboard [get]
func DashboardHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// 快取命中直接回傳已渲染的 JSON
		if cached, err := rdb.Get(ctx, dashboardCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		// 統計與繪圖屬重活，交給背景 worker pool。
		// 任務內使用 Background context：請求取消只停止等待，不中斷計算。
		ch := wp.Dispatch(func() (any, error) {
			return analytics.BuildDashboard(context.Background(), db)
		})

		select {
		case res := <-ch:
			if res.Err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: res.Err.Error()})
			}
			payload, err := json.Marshal(res.Value)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
			}
			// 快取寫入失敗不影響回應
			rdb.Set(context.Background(), dashboardCacheKey, payload, dashboardCacheTTL)
			return c.JSONBlob(http.StatusOK, payload)
		case <-ctx.Done():
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "request cancelled"})
		}
	}
}
