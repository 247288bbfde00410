// File: internal/model/mlmodel.go
package model

import "time"

// MLModel 已訓練分類器的儲存紀錄，ModelBinary 為不透明位元組，
// 最新模型以 trained_at 最大者為準，寫入後不再更動。
type MLModel struct {
	ID          int64     `db:"id" json:"id"`
	ModelName   string    `db:"model_name" json:"model_name"`
	Version     string    `db:"version" json:"version"`
	ModelBinary []byte    `db:"model_binary" json:"-"`
	TrainedAt   time.Time `db:"trained_at" json:"trained_at"`
}
