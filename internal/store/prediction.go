package store

import (
	"context"
	"fmt"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/model"
)

// CreatePrediction 寫入一筆推論日誌。
// 僅附加不驗證 user_id 是否存在，時間戳由資料庫產生。
func CreatePrediction(ctx context.Context, db database.DB, p *model.Prediction) (*model.Prediction, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO predictions (user_id, quantity, sales_price, prediction, model_version)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.UserID,
		p.Quantity,
		p.SalesPrice,
		p.Prediction,
		p.ModelVersion,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePrediction: %w", err)
	}
	return p, nil
}

func CountPredictions(ctx context.Context, db database.DB) (int64, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPredictions: %w", err)
	}
	return count, nil
}
