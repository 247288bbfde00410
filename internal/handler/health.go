// File: internal/handler/health.go
package handler

import (
	"net/http"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 整體狀態 healthy / unhealthy
	Status string `json:"status" example:"healthy"`

	// 資料庫連線狀態
	Database string `json:"database" example:"connected"`

	// dataset 資料筆數
	DatasetCount int64 `json:"dataset_count" example:"1024"`

	// models 資料筆數
	ModelCount int64 `json:"model_count" example:"1"`

	// 錯誤描述 (僅 unhealthy 時出現)
	Error string `json:"error,omitempty"`
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫連線並回報資料集與模型筆數
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Database: "disconnected",
				Error:    err.Error(),
			})
		}

		datasetCount, err := store.CountDatasetRecords(ctx, db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Database: "connected",
				Error:    err.Error(),
			})
		}
		modelCount, err := store.CountModels(ctx, db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Database: "connected",
				Error:    err.Error(),
			})
		}

		return c.JSON(http.StatusOK, HealthResponse{
			Status:       "healthy",
			Database:     "connected",
			DatasetCount: datasetCount,
			ModelCount:   modelCount,
		})
	}
}
