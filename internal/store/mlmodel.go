package store

import (
	"context"
	"errors"
	"fmt"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/model"

	"github.com/jackc/pgx/v5"
)

// GetLatestModel 取 trained_at 最大的模型紀錄。
// models 為空回傳 ErrNoModel；每次推論都會重新讀取，刻意不做快取。
func GetLatestModel(ctx context.Context, db database.DB) (*model.MLModel, error) {
	row := db.QueryRow(ctx,
		`SELECT id, model_name, version, model_binary, trained_at
		 FROM models
		 ORDER BY trained_at DESC
		 LIMIT 1`,
	)
	m := &model.MLModel{}
	if err := row.Scan(
		&m.ID,
		&m.ModelName,
		&m.Version,
		&m.ModelBinary,
		&m.TrainedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetLatestModel: %w", apperr.ErrNoModel)
		}
		return nil, fmt.Errorf("GetLatestModel: %w", err)
	}
	return m, nil
}

func CreateModel(ctx context.Context, db database.DB, m *model.MLModel) (*model.MLModel, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO models (model_name, version, model_binary)
		 VALUES ($1, $2, $3)
		 RETURNING id, trained_at`,
		m.ModelName,
		m.Version,
		m.ModelBinary,
	)
	if err := row.Scan(&m.ID, &m.TrainedAt); err != nil {
		return nil, fmt.Errorf("CreateModel: %w", err)
	}
	return m, nil
}

func CountModels(ctx context.Context, db database.DB) (int64, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM models`).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountModels: %w", err)
	}
	return count, nil
}
