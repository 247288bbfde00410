// File: internal/model/dataset.go
package model

import "time"

// DatasetRecord 銷售資料集的單筆紀錄，匯入後僅供讀取
type DatasetRecord struct {
	ID          int64     `db:"id" json:"-"`
	Item        string    `db:"item" json:"item"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	SalesPrice  float64   `db:"sales_price" json:"sales_price"`
	Amount      float64   `db:"amount" json:"amount"`
	InvoiceType string    `db:"invoice_type" json:"invoice_type"`
	Date        time.Time `db:"date" json:"date"`
}
