// File: internal/apperr/errors.go
package apperr

import "errors"

// 全域錯誤分類，各層以 fmt.Errorf("...: %w", err) 包裝後向上傳遞，
// handler 再用 errors.Is 轉換為對應的 HTTP 回應。
var (
	// ErrStoreUnavailable 資料庫連線或查詢失敗
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrAlreadyExists 該 email 的使用者已存在
	ErrAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials 登入失敗，不區分帳號不存在或密碼錯誤
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidID 識別碼格式錯誤 (非合法 UUID)
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")

	// ErrNoModel models 資料表為空，尚未訓練任何模型
	ErrNoModel = errors.New("no model available")

	// ErrCorruptModel 模型二進位內容缺失或無法解析
	ErrCorruptModel = errors.New("corrupt model")

	// ErrTxFailed 交易已中止，資料未發生任何變更
	ErrTxFailed = errors.New("transaction failed")
)
