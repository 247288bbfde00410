// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/service"
	"sales-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginRequest 定義登入的請求格式
// swagger:model LoginRequest
type LoginRequest struct {
	// 使用者 Email
	// required: true
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`

	// 使用者密碼
	// required: true
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// LoginResponse 登入成功的回應
// swagger:model LoginResponse
type LoginResponse struct {
	Success     bool             `json:"success"`
	User        dto.UserResponse `json:"user"`
	AccessToken string           `json:"access_token"`
}

// LoginHandler 驗證帳號密碼並回傳淨化後的使用者與 JWT。
// 帳號不存在與密碼錯誤回應完全相同，不洩漏 Email 是否註冊過。
// @Summary     Log in
// @Description 使用 Email 與密碼驗證，成功回傳使用者資訊與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "登入資料"
// @Success     200 {object} LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.MessageResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Email 以原樣比對，不做大小寫正規化
		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, dto.MessageResponse{Success: false, Message: "Invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		if err := service.AuthenticateUser(user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.MessageResponse{Success: false, Message: "Invalid credentials"})
		}

		token, err := service.IssueAccessToken(user, 24*time.Hour)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, LoginResponse{
			Success:     true,
			User:        dto.NewUserResponse(user),
			AccessToken: token,
		})
	}
}
