// File: internal/analytics/dashboard.go
package analytics

import (
	"context"
	"fmt"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger zerolog.Logger = log.With().Str("component", "analytics").Logger()

// DashboardStats 儀表板的摘要統計
type DashboardStats struct {
	TotalSales          float64          `json:"total_sales"`
	AverageQuantity     float64          `json:"average_quantity"`
	MedianQuantity      float64          `json:"median_quantity"`
	InvoiceCount        int64            `json:"invoice_count"`
	CategoryFrequencies map[string]int64 `json:"category_frequencies"`
}

// DashboardCharts 各圖表的 base64 PNG，資料不足時為 null
type DashboardCharts struct {
	ItemSales          *string `json:"item_sales"`
	AmountDistribution *string `json:"amount_distribution"`
	CategoryBreakdown  *string `json:"category_breakdown"`
}

type Dashboard struct {
	Stats  DashboardStats  `json:"stats"`
	Charts DashboardCharts `json:"charts"`
}

func emptyDashboard() *Dashboard {
	return &Dashboard{Stats: DashboardStats{CategoryFrequencies: map[string]int64{}}}
}

// BuildDashboard 彙整統計數字並渲染圖表。
// 統計全部由資料庫端聚合；只有直方圖需要撈出全部金額。
// 空資料集回傳零值統計與空圖表，不視為錯誤。
func BuildDashboard(ctx context.Context, db database.DB) (*Dashboard, error) {
	count, err := store.CountDatasetRecords(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}
	if count == 0 {
		logger.Warn().Msg("dataset is empty, returning zero dashboard")
		return emptyDashboard(), nil
	}

	totals, err := store.TotalSales(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}
	qty, err := store.AverageQuantity(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}
	medianQty, err := store.MedianQuantity(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}
	categories, err := store.CategoryFrequencies(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}

	d := emptyDashboard()
	d.Stats.TotalSales = totals.TotalSales
	d.Stats.InvoiceCount = totals.Count
	d.Stats.AverageQuantity = qty.AverageQuantity
	d.Stats.MedianQuantity = medianQty
	for _, c := range categories {
		d.Stats.CategoryFrequencies[c.Category] = c.Count
	}

	// 圖 1：前十品項的總銷售額長條圖
	topItems, err := store.TopItemsByAmount(ctx, db, store.DefaultTopLimit)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}
	if len(topItems) > 0 {
		names := make([]string, len(topItems))
		values := make([]float64, len(topItems))
		for i, it := range topItems {
			names[i] = it.Item
			values[i] = it.TotalAmount
		}
		img, err := renderBarChart("Total Sales by Item", "amount", names, values)
		if err != nil {
			logger.Error().Err(err).Msg("render item sales chart failed")
		} else {
			d.Charts.ItemSales = &img
		}
	}

	// 圖 2：金額分佈直方圖
	amounts, err := store.ListAmounts(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("BuildDashboard: %w", err)
	}
	if len(amounts) > 0 {
		img, err := renderHistogram("Amount Distribution", "amount", amounts)
		if err != nil {
			logger.Error().Err(err).Msg("render amount histogram failed")
		} else {
			d.Charts.AmountDistribution = &img
		}
	}

	// 圖 3：發票類別次數長條圖
	if len(categories) > 0 {
		names := make([]string, len(categories))
		values := make([]float64, len(categories))
		for i, c := range categories {
			names[i] = c.Category
			values[i] = float64(c.Count)
		}
		img, err := renderBarChart("Invoice Type Breakdown", "count", names, values)
		if err != nil {
			logger.Error().Err(err).Msg("render category chart failed")
		} else {
			d.Charts.CategoryBreakdown = &img
		}
	}

	return d, nil
}
