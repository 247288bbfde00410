package store

import (
	"context"
	"fmt"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/model"
)

func CountDatasetRecords(ctx context.Context, db database.DB) (int64, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM dataset`).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountDatasetRecords: %w", err)
	}
	return count, nil
}

// InsertDatasetRecords 批次匯入資料集，只在初始化時呼叫一次
func InsertDatasetRecords(ctx context.Context, db database.DB, records []model.DatasetRecord) (int64, error) {
	var inserted int64
	for _, r := range records {
		_, err := db.Exec(ctx,
			`INSERT INTO dataset (item, quantity, sales_price, amount, invoice_type, date)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			r.Item,
			r.Quantity,
			r.SalesPrice,
			r.Amount,
			r.InvoiceType,
			r.Date,
		)
		if err != nil {
			return inserted, fmt.Errorf("InsertDatasetRecords: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// ListDatasetFeatures 取訓練用特徵欄位，amount 缺漏時以 quantity*sales_price 推導
func ListDatasetFeatures(ctx context.Context, db database.DB) ([]model.DatasetRecord, error) {
	rows, err := db.Query(ctx,
		`SELECT quantity, sales_price, COALESCE(NULLIF(amount, 0), quantity * sales_price)
		 FROM dataset`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListDatasetFeatures: %w", err)
	}
	defer rows.Close()

	out := []model.DatasetRecord{}
	for rows.Next() {
		var r model.DatasetRecord
		if err := rows.Scan(&r.Quantity, &r.SalesPrice, &r.Amount); err != nil {
			return nil, fmt.Errorf("ListDatasetFeatures: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListDatasetFeatures: %w", err)
	}
	return out, nil
}

// ListAmounts 取所有金額，供儀表板直方圖使用
func ListAmounts(ctx context.Context, db database.DB) ([]float64, error) {
	rows, err := db.Query(ctx, `SELECT amount FROM dataset`)
	if err != nil {
		return nil, fmt.Errorf("ListAmounts: %w", err)
	}
	defer rows.Close()

	out := []float64{}
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("ListAmounts: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAmounts: %w", err)
	}
	return out, nil
}
