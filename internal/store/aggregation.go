// File: internal/store/aggregation.go
// 對應原始 MongoDB aggregation pipeline 的唯讀統計查詢。
// 所有聚合皆在資料庫端完成，應用程式不載入整張資料表；
// 空資料表回傳零值結果而非錯誤，連線問題包裝為 ErrStoreUnavailable。
package store

import (
	"context"
	"fmt"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/model"
)

// DefaultTopLimit 是 top-N 查詢未指定 limit 時的預設值
const DefaultTopLimit = 10

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperr.ErrStoreUnavailable, err)
}

// TotalSales 等同 pandas df['amount'].sum()
func TotalSales(ctx context.Context, db database.DB) (*model.TotalSales, error) {
	out := &model.TotalSales{}
	err := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM dataset`,
	).Scan(&out.TotalSales, &out.Count)
	if err != nil {
		return nil, storeErr("TotalSales", err)
	}
	return out, nil
}

// AverageQuantity 等同 pandas df['quantity'].mean() 加上最小最大值
func AverageQuantity(ctx context.Context, db database.DB) (*model.QuantityStats, error) {
	out := &model.QuantityStats{}
	err := db.QueryRow(ctx,
		`SELECT COALESCE(AVG(quantity), 0), COALESCE(MIN(quantity), 0), COALESCE(MAX(quantity), 0)
		 FROM dataset`,
	).Scan(&out.AverageQuantity, &out.MinQuantity, &out.MaxQuantity)
	if err != nil {
		return nil, storeErr("AverageQuantity", err)
	}
	return out, nil
}

// MedianAmount 取排序後 index floor(count/2) 的元素。
// 偶數筆數時為上中位數而非兩中位平均，沿用原始管線的取值規則。
// 排序由資料庫完成，這是唯一需要全欄位排序的聚合。
// 先 COUNT 再 OFFSET 共兩個語句：dataset 只在初始化時匯入一次，
// 之後唯讀，兩語句之間不會有寫入改變筆數。
func MedianAmount(ctx context.Context, db database.DB) (*model.MedianAmount, error) {
	out := &model.MedianAmount{}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM dataset`).Scan(&out.Count); err != nil {
		return nil, storeErr("MedianAmount", err)
	}
	if out.Count == 0 {
		return out, nil
	}
	err := db.QueryRow(ctx,
		`SELECT amount FROM dataset ORDER BY amount ASC OFFSET $1 LIMIT 1`,
		out.Count/2,
	).Scan(&out.MedianAmount)
	if err != nil {
		return nil, storeErr("MedianAmount", err)
	}
	return out, nil
}

// MedianQuantity 與 MedianAmount 相同規則（含唯讀前提），供儀表板統計使用
func MedianQuantity(ctx context.Context, db database.DB) (float64, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM dataset`).Scan(&count); err != nil {
		return 0, storeErr("MedianQuantity", err)
	}
	if count == 0 {
		return 0, nil
	}
	var median float64
	err := db.QueryRow(ctx,
		`SELECT quantity FROM dataset ORDER BY quantity ASC OFFSET $1 LIMIT 1`,
		count/2,
	).Scan(&median)
	if err != nil {
		return 0, storeErr("MedianQuantity", err)
	}
	return median, nil
}

// TopItemsByAmount 依品項彙總並按總金額遞減排序，limit <= 0 時取預設值
func TopItemsByAmount(ctx context.Context, db database.DB, limit int) ([]model.ItemSales, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	rows, err := db.Query(ctx,
		`SELECT item, SUM(amount), SUM(quantity), COUNT(*)
		 FROM dataset
		 GROUP BY item
		 ORDER BY SUM(amount) DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, storeErr("TopItemsByAmount", err)
	}
	defer rows.Close()

	out := []model.ItemSales{}
	for rows.Next() {
		var it model.ItemSales
		if err := rows.Scan(&it.Item, &it.TotalAmount, &it.TotalQuantity, &it.InvoiceCount); err != nil {
			return nil, storeErr("TopItemsByAmount", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("TopItemsByAmount", err)
	}
	return out, nil
}

// CategoryFrequencies 等同 pandas df['invoice_type'].value_counts()
func CategoryFrequencies(ctx context.Context, db database.DB) ([]model.CategoryFrequency, error) {
	rows, err := db.Query(ctx,
		`SELECT invoice_type, COUNT(*), COALESCE(SUM(amount), 0)
		 FROM dataset
		 GROUP BY invoice_type
		 ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, storeErr("CategoryFrequencies", err)
	}
	defer rows.Close()

	out := []model.CategoryFrequency{}
	for rows.Next() {
		var cf model.CategoryFrequency
		if err := rows.Scan(&cf.Category, &cf.Count, &cf.TotalAmount); err != nil {
			return nil, storeErr("CategoryFrequencies", err)
		}
		out = append(out, cf)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("CategoryFrequencies", err)
	}
	return out, nil
}

// DistributionStats 等同 pandas describe() 的摘要統計
func DistributionStats(ctx context.Context, db database.DB) (*model.DistributionStats, error) {
	out := &model.DistributionStats{}
	err := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(amount), 0), COALESCE(MIN(amount), 0), COALESCE(MAX(amount), 0),
		        COALESCE(AVG(quantity), 0), COALESCE(AVG(sales_price), 0)
		 FROM dataset`,
	).Scan(&out.Count, &out.AvgAmount, &out.MinAmount, &out.MaxAmount, &out.AvgQuantity, &out.AvgSalesPrice)
	if err != nil {
		return nil, storeErr("DistributionStats", err)
	}
	return out, nil
}

// PredictionsByModelVersion 各模型版本的推論次數，按次數遞減
func PredictionsByModelVersion(ctx context.Context, db database.DB) ([]model.ModelVersionCount, error) {
	rows, err := db.Query(ctx,
		`SELECT model_version, COUNT(*)
		 FROM predictions
		 GROUP BY model_version
		 ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, storeErr("PredictionsByModelVersion", err)
	}
	defer rows.Close()

	out := []model.ModelVersionCount{}
	for rows.Next() {
		var mv model.ModelVersionCount
		if err := rows.Scan(&mv.ModelVersion, &mv.Count); err != nil {
			return nil, storeErr("PredictionsByModelVersion", err)
		}
		out = append(out, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("PredictionsByModelVersion", err)
	}
	return out, nil
}

// TopUsersByPredictions 推論次數最多的使用者，limit <= 0 時取預設值
func TopUsersByPredictions(ctx context.Context, db database.DB, limit int) ([]model.UserPredictionCount, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	rows, err := db.Query(ctx,
		`SELECT user_id, COUNT(*)
		 FROM predictions
		 GROUP BY user_id
		 ORDER BY COUNT(*) DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, storeErr("TopUsersByPredictions", err)
	}
	defer rows.Close()

	out := []model.UserPredictionCount{}
	for rows.Next() {
		var uc model.UserPredictionCount
		if err := rows.Scan(&uc.UserID, &uc.PredictionCount); err != nil {
			return nil, storeErr("TopUsersByPredictions", err)
		}
		out = append(out, uc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("TopUsersByPredictions", err)
	}
	return out, nil
}

// MonthlySales 依日曆月份彙總銷售額，按月份遞增排序
func MonthlySales(ctx context.Context, db database.DB) ([]model.MonthlySales, error) {
	rows, err := db.Query(ctx,
		`SELECT to_char(date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0), COUNT(*)
		 FROM dataset
		 GROUP BY 1
		 ORDER BY 1 ASC`,
	)
	if err != nil {
		return nil, storeErr("MonthlySales", err)
	}
	defer rows.Close()

	out := []model.MonthlySales{}
	for rows.Next() {
		var ms model.MonthlySales
		if err := rows.Scan(&ms.Month, &ms.TotalSales, &ms.InvoiceCount); err != nil {
			return nil, storeErr("MonthlySales", err)
		}
		out = append(out, ms)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("MonthlySales", err)
	}
	return out, nil
}
