// File: internal/handler/ml/train_model.go
package ml

import (
	"context"
	"net/http"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/model"
	"sales-dashboard/internal/service"
	"sales-dashboard/internal/store"
	"sales-dashboard/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	trainedModelName    = "sales_classifier"
	trainedModelVersion = "1.0"
)

// TrainModelResponse 訓練結果
// swagger:model TrainModelResponse
type TrainModelResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ModelName  string `json:"model_name"`
	Version    string `json:"version"`
	ModelCount int64  `json:"model_count"`
}

// TrainModelHandler 以現有資料集訓練新的分類器並存檔。
// 每次訓練都新增一筆 models 紀錄，推論一律取最新。
// @Summary     Train model
// @Description 從 dataset 取特徵訓練邏輯斯迴歸分類器
// @Tags        ml
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TrainModelResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /train-model [post]
func TrainModelHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		results := wp.Dispatch(func() (any, error) {
			ctx := context.Background()

			records, err := store.ListDatasetFeatures(ctx, db)
			if err != nil {
				return nil, err
			}
			clf, err := service.TrainClassifier(records)
			if err != nil {
				return nil, err
			}
			blob, err := clf.Marshal()
			if err != nil {
				return nil, err
			}

			if _, err := store.CreateModel(ctx, db, &model.MLModel{
				ModelName:   trainedModelName,
				Version:     trainedModelVersion,
				ModelBinary: blob,
			}); err != nil {
				return nil, err
			}
			count, err := store.CountModels(ctx, db)
			if err != nil {
				return nil, err
			}
			log.Info().Int64("model_count", count).Msg("model trained")
			return TrainModelResponse{
				Success:    true,
				Message:    "model trained and saved",
				ModelName:  trainedModelName,
				Version:    trainedModelVersion,
				ModelCount: count,
			}, nil
		})

		select {
		case res := <-results:
			if res.Err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: res.Err.Error()})
			}
			return c.JSON(http.StatusOK, res.Value.(TrainModelResponse))
		case <-c.Request().Context().Done():
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "request cancelled"})
		}
	}
}
