// File: internal/handler/ml/load_dataset.go
package ml

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/ingest"
	"sales-dashboard/internal/store"
	"sales-dashboard/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const defaultDatasetPath = "data/Book4.xlsx"

// LoadDatasetResponse 匯入結果
// swagger:model LoadDatasetResponse
type LoadDatasetResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	RecordsLoaded int64  `json:"records_loaded"`
}

// LoadDatasetHandler 從 Excel 檔匯入銷售資料集。
// 已有資料時直接略過，重複呼叫不會造成重複匯入。
// @Summary     Load dataset
// @Description 解析 DATASET_PATH 指定的 xlsx 並批次寫入 dataset
// @Tags        ml
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} LoadDatasetResponse
// @Failure     500 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /load-dataset [post]
func LoadDatasetHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		results := wp.Dispatch(func() (any, error) {
			ctx := context.Background()

			count, err := store.CountDatasetRecords(ctx, db)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return LoadDatasetResponse{
					Success:       true,
					Message:       "dataset already loaded",
					RecordsLoaded: 0,
				}, nil
			}

			path := os.Getenv("DATASET_PATH")
			if path == "" {
				path = defaultDatasetPath
			}
			records, err := ingest.LoadDataset(path)
			if err != nil {
				return nil, err
			}

			inserted, err := store.InsertDatasetRecords(ctx, db, records)
			if err != nil {
				return nil, err
			}
			log.Info().Int64("records", inserted).Str("path", path).Msg("dataset loaded")
			return LoadDatasetResponse{
				Success:       true,
				Message:       fmt.Sprintf("loaded %d records", inserted),
				RecordsLoaded: inserted,
			}, nil
		})

		select {
		case res := <-results:
			if res.Err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: res.Err.Error()})
			}
			return c.JSON(http.StatusOK, res.Value.(LoadDatasetResponse))
		case <-c.Request().Context().Done():
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "request cancelled"})
		}
	}
}
