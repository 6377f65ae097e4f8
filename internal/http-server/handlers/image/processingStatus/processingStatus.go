package processingStatus

import (
	"context"
	"database/sql"
	"errors"
	"github.com/dabolichin/ligence-task/internal/lib/api/response"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"math"
	"net/http"
	"time"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

type Response struct {
	response.Response
	ImageID          uuid.UUID  `json:"image_id"`
	ProcessingStatus string     `json:"processing_status"`
	VariantsDone     int        `json:"variants_done"`
	VariantsTotal    int        `json:"variants_total"`
	Progress         float64    `json:"progress"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusProvider
type StatusProvider interface {
	GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
	CountModifications(ctx context.Context, imageID uuid.UUID) (int, error)
}

// New reports how far variant generation for an image has progressed.
// @Summary      Processing status
// @Description  Returns the number of generated variants and whether the batch has completed
// @Tags         images
// @Produce      json
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  processingStatus.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /processing/{id}/status [get]
func New(log *slog.Logger, variantsTotal int, provider StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.processingStatus.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		imageID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse image ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid image ID"))
			return
		}

		image, err := provider.GetImage(r.Context(), imageID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn("image not found", slog.String("image_id", imageID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("image not found"))
				return
			}

			log.Error("failed to get image from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get image"))
			return
		}

		count, err := provider.CountModifications(r.Context(), imageID)
		if err != nil {
			log.Error("failed to count variants", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get processing status"))
			return
		}

		status := StatusProcessing
		var completedAt *time.Time
		if count >= variantsTotal {
			status = StatusCompleted
			completedAt = &image.UpdatedAt
		}

		progress := float64(count) / float64(variantsTotal) * 100.0

		render.JSON(w, r, Response{
			Response:         response.OK(),
			ImageID:          imageID,
			ProcessingStatus: status,
			VariantsDone:     count,
			VariantsTotal:    variantsTotal,
			Progress:         math.Round(progress*100) / 100,
			CompletedAt:      completedAt,
		})
	}
}
