// File: internal/handler/users/profile.go
package users

import (
	"errors"
	"net/http"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileResponse 個人資料回應
// swagger:model ProfileResponse
type ProfileResponse struct {
	Success bool             `json:"success"`
	User    dto.UserResponse `json:"user"`
}

// ProfileHandler 依 user_id 取使用者資料
// @Summary     Get profile
// @Description 依 UUID 取使用者公開資料，識別碼格式錯誤或查無資料皆回 404
// @Tags        users
// @Produce     json
// @Param       user_id path string true "使用者 ID (UUID)"
// @Success     200 {object} ProfileResponse
// @Failure     404 {object} dto.MessageResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /profile/{user_id} [get]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 格式錯誤的識別碼視同查無此人
		uid, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, dto.MessageResponse{Success: false, Message: "User not found"})
		}

		user, err := store.GetUserByID(c.Request().Context(), db, uid)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.MessageResponse{Success: false, Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, ProfileResponse{Success: true, User: dto.NewUserResponse(user)})
	}
}
