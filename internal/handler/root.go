// File: internal/handler/root.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServiceInfo 服務基本資訊回應模型
// swagger:model ServiceInfo
type ServiceInfo struct {
	Message string            `json:"message" example:"Sales AI Dashboard API"`
	Version string            `json:"version" example:"1.0.0"`
	Docs    string            `json:"docs" example:"/swagger/index.html"`
	Health  string            `json:"health" example:"/health"`
	Routes  map[string]string `json:"endpoints"`
}

// RootHandler 回傳服務資訊與端點清單
// @Summary     Service info
// @Description 回傳 API 版本與主要端點
// @Tags        meta
// @Produce     json
// @Success     200 {object} ServiceInfo
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, ServiceInfo{
			Message: "Sales AI Dashboard API",
			Version: "1.0.0",
			Docs:    "/swagger/index.html",
			Health:  "/health",
			Routes: map[string]string{
				"signup":         "POST /signup",
				"login":          "POST /login",
				"dashboard":      "GET /dashboard",
				"profile":        "GET /profile/{user_id}",
				"predict":        "POST /predict",
				"delete_account": "DELETE /delete-account",
				"health":         "GET /health",
				"load_dataset":   "POST /load-dataset",
				"train_model":    "POST /train-model",
			},
		})
	}
}
