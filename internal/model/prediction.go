// File: internal/model/prediction.go
package model

import "time"

// Prediction 單次推論的日誌紀錄。
// UserID 以字串儲存，不設外鍵，與 users 的一致性僅靠刪帳號交易維護。
type Prediction struct {
	ID           int64     `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Quantity     float64   `db:"quantity" json:"quantity"`
	SalesPrice   float64   `db:"sales_price" json:"sales_price"`
	Prediction   int       `db:"prediction" json:"prediction"`
	ModelVersion string    `db:"model_version" json:"model_version"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
