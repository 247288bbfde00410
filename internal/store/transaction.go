// File: internal/store/transaction.go
package store

import (
	"context"
	"fmt"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/model"

	"github.com/google/uuid"
)

// DeleteUserAndPredictions 在單一交易內刪除使用者與其全部推論紀錄：
// users 以 UUID 比對，predictions 以原始字串 user_id 比對。
// 兩個刪除都成功才 commit，任一失敗即 rollback，絕不留下部分刪除。
func DeleteUserAndPredictions(ctx context.Context, db database.DB, userID string) (*model.DeletionResult, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("DeleteUserAndPredictions: %w: %q", apperr.ErrInvalidID, userID)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("DeleteUserAndPredictions: %w: %v", apperr.ErrTxFailed, err)
	}
	defer tx.Rollback(ctx)

	userTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, uid)
	if err != nil {
		return nil, fmt.Errorf("DeleteUserAndPredictions: delete users: %w: %v", apperr.ErrTxFailed, err)
	}

	predTag, err := tx.Exec(ctx, `DELETE FROM predictions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("DeleteUserAndPredictions: delete predictions: %w: %v", apperr.ErrTxFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("DeleteUserAndPredictions: commit: %w: %v", apperr.ErrTxFailed, err)
	}

	return &model.DeletionResult{
		UsersDeleted:       userTag.RowsAffected(),
		PredictionsDeleted: predTag.RowsAffected(),
	}, nil
}
