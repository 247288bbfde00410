// File: internal/dto/user_response.go
package dto

import (
	"time"

	"sales-dashboard/internal/model"
)

// UserResponse 對外的使用者資訊，絕不包含 password_hash
// swagger:model UserResponse
type UserResponse struct {
	// 使用者 ID (UUID 字串)
	ID string `json:"id" example:"6f1c6f3e-98a1-4f38-bb6e-7d4f6a7c9a01"`

	// 使用者姓名
	Name string `json:"name" example:"Alice"`

	// 使用者 Email
	Email string `json:"email" example:"alice@example.com"`

	// 建立時間 (RFC3339 格式)
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// NewUserResponse 由 model.User 組出淨化後的回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
