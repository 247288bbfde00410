// File: internal/router/router.go
package router

import (
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/labstack/echo/v4"

	"sales-dashboard/internal/cache"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/handler"
	"sales-dashboard/internal/handler/aggregations"
	"sales-dashboard/internal/handler/auth"
	"sales-dashboard/internal/handler/ml"
	"sales-dashboard/internal/handler/users"
	"sales-dashboard/internal/middleware"
	"sales-dashboard/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	// 服務資訊與健康檢查
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db))

	// 帳號
	e.POST("/signup", auth.SignupHandler(db))
	e.POST("/login", auth.LoginHandler(db))
	e.GET("/profile/:user_id", users.ProfileHandler(db))
	e.DELETE("/delete-account", users.DeleteAccountHandler(db))

	// 推論與儀表板
	e.POST("/predict", ml.PredictHandler(db, wp))
	e.GET("/dashboard", handler.DashboardHandler(db, rdb, wp))

	// 維運端點（需登入）
	e.POST("/load-dataset", ml.LoadDatasetHandler(db, wp), middleware.RequireAuth)
	e.POST("/train-model", ml.TrainModelHandler(db, wp), middleware.RequireAuth)

	// 統計查詢
	agg := e.Group("/aggregations")
	agg.GET("/total-sales", aggregations.TotalSalesHandler(db))
	agg.GET("/average-quantity", aggregations.AverageQuantityHandler(db))
	agg.GET("/median-amount", aggregations.MedianAmountHandler(db))
	agg.GET("/top-items", aggregations.TopItemsHandler(db))
	agg.GET("/category-frequencies", aggregations.CategoryFrequenciesHandler(db))
	agg.GET("/distribution-stats", aggregations.DistributionStatsHandler(db))
	agg.GET("/predictions-by-model", aggregations.PredictionsByModelHandler(db))
	agg.GET("/top-users-predictions", aggregations.TopUsersPredictionsHandler(db))
	agg.GET("/monthly-sales", aggregations.MonthlySalesHandler(db))

	// API 文件
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
