// File: internal/dto/responses.go
package dto

// MessageResponse 通用的 success/message 回應
// swagger:model MessageResponse
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AggregationResponse 包裝單一聚合查詢的結果
// swagger:model AggregationResponse
type AggregationResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
