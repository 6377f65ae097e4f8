package getInstructions

import (
	"context"
	"database/sql"
	"encoding/json"
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

// Response is the payload the verification service consumes. It is served
// bare, without the usual status envelope, and its field names are part of
// the cross-service contract.
type Response struct {
	ModificationID   uuid.UUID            `json:"modification_id"`
	ImageID          uuid.UUID            `json:"image_id"`
	OriginalFilename string               `json:"original_filename"`
	VariantNumber    int                  `json:"variant_number"`
	AlgorithmType    models.AlgorithmType `json:"algorithm_type"`
	Instructions     json.RawMessage      `json:"instructions"`
	StoragePath      string               `json:"storage_path"`
	CreatedAt        time.Time            `json:"created_at"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InstructionProvider
type InstructionProvider interface {
	GetModification(ctx context.Context, id uuid.UUID) (*models.Modification, error)
	GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
}

func New(log *slog.Logger, provider InstructionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.modification.getInstructions.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		modificationID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse modification ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid modification ID"))
			return
		}

		modification, err := provider.GetModification(r.Context(), modificationID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn("modification not found", slog.String("modification_id", modificationID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("modification not found"))
				return
			}

			log.Error("failed to get modification from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get modification"))
			return
		}

		image, err := provider.GetImage(r.Context(), modification.ImageID)
		if err != nil {
			// The parent image row is gone while the modification survives.
			// Not a lookup miss, so never a 404.
			log.Error("failed to get image for modification",
				slog.String("modification_id", modificationID.String()),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get image"))
			return
		}

		log.Info("instructions retrieved", slog.String("modification_id", modificationID.String()))

		render.JSON(w, r, Response{
			ModificationID:   modification.ID,
			ImageID:          modification.ImageID,
			OriginalFilename: image.OriginalFilename,
			VariantNumber:    modification.VariantNumber,
			AlgorithmType:    modification.AlgorithmType,
			Instructions:     modification.Instructions,
			StoragePath:      modification.StoragePath,
			CreatedAt:        modification.CreatedAt,
		})
	}
}
