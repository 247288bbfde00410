// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/model"
	"sales-dashboard/internal/service"
	"sales-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

// SignupRequest 定義註冊的請求格式
// swagger:model SignupRequest
type SignupRequest struct {
	// 使用者姓名
	// required: true
	Name string `json:"name" form:"name" validate:"required" example:"Alice"`

	// 使用者 Email (原樣儲存，比對區分大小寫)
	// required: true
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`

	// 使用者密碼
	// required: true
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// SignupHandler 建立新帳號
// @Summary     Sign up
// @Description 建立新使用者帳號，Email 重複時回傳 409
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "註冊資料"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.MessageResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		ctx := c.Request().Context()

		// 先查一次給友善訊息；真正的唯一性由 email unique index 保證
		if _, err := store.GetUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, dto.MessageResponse{Success: false, Message: "User already exists"})
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		if _, err := store.CreateUser(ctx, db, user); err != nil {
			// 併發註冊撞到 unique index
			if errors.Is(err, apperr.ErrAlreadyExists) {
				return c.JSON(http.StatusConflict, dto.MessageResponse{Success: false, Message: "User already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Success: true, Message: "Account created successfully"})
	}
}
