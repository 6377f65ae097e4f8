package imageDetails

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

// ImageInfo is the outward view of an image row. Width, height and format
// are zero-valued when the dimensions could not be decoded at upload time.
type ImageInfo struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	Width            int32     `json:"width,omitempty"`
	Height           int32     `json:"height,omitempty"`
	Format           string    `json:"format,omitempty"`
	StoragePath      string    `json:"storage_path"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Response struct {
	response.Response
	Image         ImageInfo `json:"image"`
	VariantsCount int       `json:"variants_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageProvider
type ImageProvider interface {
	GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
	CountModifications(ctx context.Context, imageID uuid.UUID) (int, error)
}

func New(log *slog.Logger, provider ImageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.imageDetails.New"

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
			render.JSON(w, r, response.Error("failed to count variants"))
			return
		}

		log.Info("image retrieved successfully", slog.String("image_id", imageID.String()))

		render.JSON(w, r, Response{
			Response:      response.OK(),
			Image:         imageInfo(image),
			VariantsCount: count,
		})
	}
}

func imageInfo(image *models.Image) ImageInfo {
	info := ImageInfo{
		ID:               image.ID,
		OriginalFilename: image.OriginalFilename,
		FileSize:         image.FileSize,
		StoragePath:      image.StoragePath,
		CreatedAt:        image.CreatedAt,
		UpdatedAt:        image.UpdatedAt,
	}

	if image.Width.Valid {
		info.Width = image.Width.Int32
	}
	if image.Height.Valid {
		info.Height = image.Height.Int32
	}
	if image.Format.Valid {
		info.Format = image.Format.String
	}

	return info
}
