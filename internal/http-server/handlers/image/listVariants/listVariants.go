package listVariants

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
	"net/http"
	"time"
)

// VariantInfo is one generated variant as listed publicly. Reversal
// instructions stay behind the internal instructions endpoint.
type VariantInfo struct {
	ID            uuid.UUID            `json:"id"`
	VariantNumber int                  `json:"variant_number"`
	AlgorithmType models.AlgorithmType `json:"algorithm_type"`
	StoragePath   string               `json:"storage_path"`
	CreatedAt     time.Time            `json:"created_at"`
}

type Response struct {
	response.Response
	ImageID  uuid.UUID     `json:"image_id"`
	Variants []VariantInfo `json:"variants"`
	Count    int           `json:"count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VariantLister
type VariantLister interface {
	GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
	ListModifications(ctx context.Context, imageID uuid.UUID) ([]models.Modification, error)
}

func New(log *slog.Logger, lister VariantLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.listVariants.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		imageID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse image ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid image ID"))
			return
		}

		if _, err = lister.GetImage(r.Context(), imageID); err != nil {
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

		modifications, err := lister.ListModifications(r.Context(), imageID)
		if err != nil {
			log.Error("failed to list variants", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list variants"))
			return
		}

		variants := make([]VariantInfo, 0, len(modifications))
		for _, modification := range modifications {
			variants = append(variants, VariantInfo{
				ID:            modification.ID,
				VariantNumber: modification.VariantNumber,
				AlgorithmType: modification.AlgorithmType,
				StoragePath:   modification.StoragePath,
				CreatedAt:     modification.CreatedAt,
			})
		}

		log.Info("variants listed",
			slog.String("image_id", imageID.String()),
			slog.Int("count", len(variants)),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			ImageID:  imageID,
			Variants: variants,
			Count:    len(variants),
		})
	}
}
