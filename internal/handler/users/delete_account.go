// File: internal/handler/users/delete_account.go
package users

import (
	"errors"
	"net/http"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteAccountRequest 刪帳號的請求格式
// swagger:model DeleteAccountRequest
type DeleteAccountRequest struct {
	// 使用者 ID (UUID 字串)
	// required: true
	UserID string `json:"user_id" form:"user_id" validate:"required" example:"6f1c6f3e-98a1-4f38-bb6e-7d4f6a7c9a01"`
}

// DeleteAccountResponse 刪帳號結果
// swagger:model DeleteAccountResponse
type DeleteAccountResponse struct {
	Success            bool  `json:"success"`
	UsersDeleted       int64 `json:"users_deleted"`
	PredictionsDeleted int64 `json:"predictions_deleted"`
}

// DeleteAccountHandler 在單一交易內刪除使用者與其全部推論紀錄
// @Summary     Delete account
// @Description 以交易刪除使用者與其推論紀錄，任一步失敗即全部回滾
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body DeleteAccountRequest true "刪除目標"
// @Success     200 {object} DeleteAccountResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /delete-account [delete]
func DeleteAccountHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req DeleteAccountRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		result, err := store.DeleteUserAndPredictions(c.Request().Context(), db, req.UserID)
		if err != nil {
			if errors.Is(err, apperr.ErrInvalidID) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user_id format"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, DeleteAccountResponse{
			Success:            true,
			UsersDeleted:       result.UsersDeleted,
			PredictionsDeleted: result.PredictionsDeleted,
		})
	}
}
