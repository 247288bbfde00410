// File: internal/handler/ml/predict.go
package ml

import (
	"context"
	"errors"
	"net/http"

	"sales-dashboard/internal/apperr"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/model"
	"sales-dashboard/internal/service"
	"sales-dashboard/internal/store"
	"sales-dashboard/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// PredictRequest 單筆推論的輸入特徵
// swagger:model PredictRequest
type PredictRequest struct {
	// 發出請求的使用者 ID，僅作日誌欄位不驗證存在性
	UserID string `json:"user_id" form:"user_id" validate:"required" example:"6f1c6f3e-98a1-4f38-bb6e-7d4f6a7c9a01"`
	// 數量，必須大於 0
	Quantity float64 `json:"quantity" form:"quantity" validate:"required,gt=0" example:"3"`
	// 單價，不可為負
	SalesPrice float64 `json:"sales_price" form:"sales_price" validate:"gte=0" example:"199.5"`
}

// PredictResponse 推論結果
// swagger:model PredictResponse
type PredictResponse struct {
	Success      bool   `json:"success"`
	Prediction   int    `json:"prediction"`
	Label        string `json:"label"`
	ModelVersion string `json:"model_version"`
}

type predictOutcome struct {
	prediction int
	version    string
}

// PredictHandler 以最新訓練的分類器推論交易好壞，並寫入一筆推論日誌。
// 推論在工作池上執行；沒有可用模型時不寫任何紀錄。
// @Summary     Predict sale quality
// @Description 載入最新模型推論，成功後記錄一筆 prediction
// @Tags        ml
// @Accept      json
// @Produce     json
// @Param       request body PredictRequest true "推論特徵"
// @Success     200 {object} PredictResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /predict [post]
func PredictHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req PredictRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 任務自帶背景 context，請求取消只停止等待，不中斷已排入的工作
		results := wp.Dispatch(func() (any, error) {
			ctx := context.Background()

			m, err := store.GetLatestModel(ctx, db)
			if err != nil {
				return nil, err
			}
			clf, err := service.UnmarshalClassifier(m.ModelBinary)
			if err != nil {
				return nil, err
			}
			pred := clf.Predict(req.Quantity, req.SalesPrice)

			if _, err := store.CreatePrediction(ctx, db, &model.Prediction{
				UserID:       req.UserID,
				Quantity:     req.Quantity,
				SalesPrice:   req.SalesPrice,
				Prediction:   pred,
				ModelVersion: m.Version,
			}); err != nil {
				log.Error().Err(err).Msg("failed to log prediction")
				return nil, err
			}
			return predictOutcome{prediction: pred, version: m.Version}, nil
		})

		select {
		case res := <-results:
			if res.Err != nil {
				switch {
				case errors.Is(res.Err, apperr.ErrNoModel):
					return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "no trained model available"})
				default:
					return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: res.Err.Error()})
				}
			}
			out := res.Value.(predictOutcome)
			label := "bad"
			if out.prediction == 1 {
				label = "good"
			}
			return c.JSON(http.StatusOK, PredictResponse{
				Success:      true,
				Prediction:   out.prediction,
				Label:        label,
				ModelVersion: out.version,
			})
		case <-c.Request().Context().Done():
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "request cancelled"})
		}
	}
}
