// File: internal/service/classifier.go
package service

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/model"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Classifier 是以 (quantity, sales_price) 為特徵的二元羅吉斯迴歸分類器。
// 序列化為 JSON 後以不透明位元組存入 models.model_binary。
type Classifier struct {
	ModelName string    `json:"model_name"`
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// UnmarshalClassifier 還原儲存的模型位元組。
// 內容缺失或無法解析一律視為 ErrCorruptModel。
func UnmarshalClassifier(blob []byte) (*Classifier, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("UnmarshalClassifier: missing model binary: %w", apperr.ErrCorruptModel)
	}
	var c Classifier
	if err := json.Unmarshal(blob, &c); err != nil {
		return nil, fmt.Errorf("UnmarshalClassifier: %w: %v", apperr.ErrCorruptModel, err)
	}
	if len(c.Weights) != 2 {
		return nil, fmt.Errorf("UnmarshalClassifier: expected 2 weights, got %d: %w", len(c.Weights), apperr.ErrCorruptModel)
	}
	return &c, nil
}

// Marshal 序列化模型為儲存用位元組
func (c *Classifier) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// Predict 對單筆輸入做推論，回傳 1 (good) 或 0 (bad)
func (c *Classifier) Predict(quantity, salesPrice float64) int {
	z := c.Weights[0]*quantity + c.Weights[1]*salesPrice + c.Intercept
	if sigmoid(z) >= 0.5 {
		return 1
	}
	return 0
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

const (
	trainIterations = 500
	trainRate       = 0.1
)

// TrainClassifier 以資料集訓練羅吉斯迴歸：
// 標籤為 amount 是否大於中位數 (高價 vs 低價發票)，
// 特徵標準化後做固定步數梯度下降，再把縮放折回原始尺度的權重。
func TrainClassifier(records []model.DatasetRecord) (*Classifier, error) {
	n := len(records)
	if n == 0 {
		return nil, fmt.Errorf("TrainClassifier: dataset is empty")
	}

	amounts := make([]float64, n)
	qty := make([]float64, n)
	price := make([]float64, n)
	for i, r := range records {
		amount := r.Amount
		if amount == 0 {
			amount = r.Quantity * r.SalesPrice
		}
		amounts[i] = amount
		qty[i] = r.Quantity
		price[i] = r.SalesPrice
	}

	med := medianOf(amounts)
	y := mat.NewVecDense(n, nil)
	for i, a := range amounts {
		if a > med {
			y.SetVec(i, 1)
		}
	}

	qtyMean, qtyStd := stat.MeanStdDev(qty, nil)
	priceMean, priceStd := stat.MeanStdDev(price, nil)
	if qtyStd == 0 || math.IsNaN(qtyStd) {
		qtyStd = 1
	}
	if priceStd == 0 || math.IsNaN(priceStd) {
		priceStd = 1
	}

	// 設計矩陣含常數項欄位
	x := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, (qty[i]-qtyMean)/qtyStd)
		x.Set(i, 1, (price[i]-priceMean)/priceStd)
		x.Set(i, 2, 1)
	}

	w := mat.NewVecDense(3, nil)
	z := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(3, nil)
	for iter := 0; iter < trainIterations; iter++ {
		z.MulVec(x, w)
		// 殘差 sigmoid(z) - y
		for i := 0; i < n; i++ {
			z.SetVec(i, sigmoid(z.AtVec(i))-y.AtVec(i))
		}
		grad.MulVec(x.T(), z)
		w.AddScaledVec(w, -trainRate/float64(n), grad)
	}

	// 把標準化權重換算回原始特徵尺度
	wq := w.AtVec(0) / qtyStd
	wp := w.AtVec(1) / priceStd
	b := w.AtVec(2) - w.AtVec(0)*qtyMean/qtyStd - w.AtVec(1)*priceMean/priceStd

	return &Classifier{
		ModelName: "sales_classifier",
		Features:  []string{"quantity", "sales_price"},
		Weights:   []float64{wq, wp},
		Intercept: b,
	}, nil
}

func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
