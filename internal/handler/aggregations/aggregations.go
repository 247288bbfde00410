// File: internal/handler/aggregations/aggregations.go
package aggregations

import (
	"net/http"
	"strconv"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

// limitParam 解析 limit query 參數，缺漏或無效時回傳預設值
func limitParam(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return store.DefaultTopLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return store.DefaultTopLimit
	}
	return n
}

func respond(c echo.Context, data any, err error) error {
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.AggregationResponse{Success: true, Data: data})
}

// TotalSalesHandler 全表銷售總額
// @Summary Total sales
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/total-sales [get]
func TotalSalesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.TotalSales(c.Request().Context(), db)
		return respond(c, data, err)
	}
}

// AverageQuantityHandler 數量平均與總和
// @Summary Average quantity
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/average-quantity [get]
func AverageQuantityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.AverageQuantity(c.Request().Context(), db)
		return respond(c, data, err)
	}
}

// MedianAmountHandler 金額中位數，偶數筆取排序後上半部第一筆
// @Summary Median amount
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/median-amount [get]
func MedianAmountHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.MedianAmount(c.Request().Context(), db)
		return respond(c, data, err)
	}
}

// TopItemsHandler 銷售額前 N 名品項
// @Summary Top items by amount
// @Tags    aggregations
// @Produce json
// @Param   limit query int false "回傳筆數上限" default(10)
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/top-items [get]
func TopItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.TopItemsByAmount(c.Request().Context(), db, limitParam(c))
		return respond(c, data, err)
	}
}

// CategoryFrequenciesHandler 各發票類別出現次數
// @Summary Category frequencies
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/category-frequencies [get]
func CategoryFrequenciesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.CategoryFrequencies(c.Request().Context(), db)
		return respond(c, data, err)
	}
}

// DistributionStatsHandler 金額分布統計 (min/max/avg/stddev)
// @Summary Distribution stats
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/distribution-stats [get]
func DistributionStatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.DistributionStats(c.Request().Context(), db)
		return respond(c, data, err)
	}
}

// PredictionsByModelHandler 各模型版本的推論次數
// @Summary Predictions by model version
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/predictions-by-model [get]
func PredictionsByModelHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.PredictionsByModelVersion(c.Request().Context(), db)
		return respond(c, data, err)
	}
}

// TopUsersPredictionsHandler 推論次數前 N 名使用者
// @Summary Top users by predictions
// @Tags    aggregations
// @Produce json
// @Param   limit query int false "回傳筆數上限" default(10)
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/top-users-predictions [get]
func TopUsersPredictionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.TopUsersByPredictions(c.Request().Context(), db, limitParam(c))
		return respond(c, data, err)
	}
}

// MonthlySalesHandler 依月份彙總的銷售額，月份遞增排序
// @Summary Monthly sales
// @Tags    aggregations
// @Produce json
// @Success 200 {object} dto.AggregationResponse
// @Failure 500 {object} dto.HTTPError
// @Router  /aggregations/monthly-sales [get]
func MonthlySalesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := store.MonthlySales(c.Request().Context(), db)
		return respond(c, data, err)
	}
}
