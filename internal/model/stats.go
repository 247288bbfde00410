// File: internal/model/stats.go
package model

// 聚合查詢的回傳模型，欄位皆由資料庫端計算，
// 空資料表一律回傳零值而非錯誤。

type TotalSales struct {
	TotalSales float64 `json:"total_sales"`
	Count      int64   `json:"count"`
}

type QuantityStats struct {
	AverageQuantity float64 `json:"average_quantity"`
	MinQuantity     float64 `json:"min_quantity"`
	MaxQuantity     float64 `json:"max_quantity"`
}

type MedianAmount struct {
	MedianAmount float64 `json:"median_amount"`
	Count        int64   `json:"count"`
}

type ItemSales struct {
	Item          string  `json:"item"`
	TotalAmount   float64 `json:"total_amount"`
	TotalQuantity float64 `json:"total_quantity"`
	InvoiceCount  int64   `json:"invoice_count"`
}

type CategoryFrequency struct {
	Category    string  `json:"category"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type DistributionStats struct {
	Count         int64   `json:"count"`
	AvgAmount     float64 `json:"avg_amount"`
	MinAmount     float64 `json:"min_amount"`
	MaxAmount     float64 `json:"max_amount"`
	AvgQuantity   float64 `json:"avg_quantity"`
	AvgSalesPrice float64 `json:"avg_sales_price"`
}

type ModelVersionCount struct {
	ModelVersion string `json:"model_version"`
	Count        int64  `json:"count"`
}

type UserPredictionCount struct {
	UserID          string `json:"user_id"`
	PredictionCount int64  `json:"prediction_count"`
}

type MonthlySales struct {
	Month        string  `json:"month"`
	TotalSales   float64 `json:"total_sales"`
	InvoiceCount int64   `json:"invoice_count"`
}

// DeletionResult 刪帳號交易的刪除筆數
type DeletionResult struct {
	UsersDeleted       int64 `json:"users_deleted"`
	PredictionsDeleted int64 `json:"predictions_deleted"`
}
