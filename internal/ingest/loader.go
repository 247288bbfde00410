// File: internal/ingest/loader.go
// 讀取 Excel 銷售資料集並轉為 DatasetRecord，僅供初始化匯入使用。
package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-dashboard/internal/model"

	"github.com/xuri/excelize/v2"
)

// 欄位名稱正規化表，相容原始 Excel 的欄位命名
var columnAliases = map[string]string{
	"item":         "item",
	"qty":          "quantity",
	"quantity":     "quantity",
	"sales price":  "sales_price",
	"sales_price":  "sales_price",
	"amount":       "amount",
	"invoice type": "invoice_type",
	"invoice_type": "invoice_type",
	"date":         "date",
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/06",
	"01-02-06",
}

// LoadDataset 讀取 xlsx 第一個工作表，正規化欄位後回傳紀錄。
// 缺 quantity 或 sales_price 的列會被捨棄，amount 缺漏時以
// quantity*sales_price 推導。
func LoadDataset(path string) ([]model.DatasetRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadDataset: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("LoadDataset: no sheets in %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("LoadDataset: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("LoadDataset: %s has no data rows", path)
	}

	// 表頭對應欄位位置
	cols := map[string]int{}
	for i, name := range rows[0] {
		if logical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			cols[logical] = i
		}
	}
	if _, ok := cols["quantity"]; !ok {
		return nil, fmt.Errorf("LoadDataset: missing quantity column")
	}
	if _, ok := cols["sales_price"]; !ok {
		return nil, fmt.Errorf("LoadDataset: missing sales_price column")
	}

	records := []model.DatasetRecord{}
	for _, row := range rows[1:] {
		quantity, okQ := cellFloat(row, cols, "quantity")
		price, okP := cellFloat(row, cols, "sales_price")
		if !okQ || !okP {
			continue
		}
		r := model.DatasetRecord{
			Item:        cellString(row, cols, "item"),
			Quantity:    quantity,
			SalesPrice:  price,
			InvoiceType: cellString(row, cols, "invoice_type"),
			Date:        cellDate(row, cols, "date"),
		}
		if amount, ok := cellFloat(row, cols, "amount"); ok {
			r.Amount = amount
		} else {
			r.Amount = quantity * price
		}
		records = append(records, r)
	}
	return records, nil
}

func cellString(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellFloat(row []string, cols map[string]int, name string) (float64, bool) {
	s := cellString(row, cols, name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cellDate(row []string, cols map[string]int, name string) time.Time {
	s := cellString(row, cols, name)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
