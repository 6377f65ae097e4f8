package uploadImage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"github.com/dabolichin/ligence-task/internal/kafka/producer"
	"github.com/dabolichin/ligence-task/internal/lib/api/response"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/dabolichin/ligence-task/internal/processing/filestore"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
)

type ImageResponse struct {
	response.Response
	ImageID uuid.UUID `json:"image_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSaver
type ImageSaver interface {
	SaveImage(ctx context.Context, image *models.Image) (*models.Image, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OriginalStore
type OriginalStore interface {
	SaveOriginal(data []byte, filename string, imageID uuid.UUID) (string, *filestore.Metadata, error)
	DeleteImageFiles(imageID uuid.UUID) int
}

// New uploads an image and queues generation of its variants.
// @Summary      Upload an image
// @Description  Validates and stores an original image, then queues background generation of its variants
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file to upload"
// @Success      200  {object}  uploadImage.ImageResponse
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /modify [post]
func New(log *slog.Logger, maxFileSize int64, imageSaver ImageSaver, files OriginalStore, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.uploadImage.New"

		log = log.With(
			slog.String("op", op),
		)

		file, header, err := r.FormFile("image")
		if err != nil {
			log.Error("failed to get file from request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to get file from request"))
			return
		}
		defer func(file multipart.File) {
			err = file.Close()
			if err != nil {
				return
			}
		}(file)

		if header.Size == 0 {
			log.Error("received empty file")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("received empty file"))
			return
		}

		if header.Size > maxFileSize {
			log.Error("file exceeds the size limit",
				slog.Int64("size", header.Size),
				slog.Int64("limit", maxFileSize),
			)
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("file is too large"))
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			log.Error("failed to read file content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read file"))
			return
		}

		imageID := uuid.New()

		path, meta, err := files.SaveOriginal(data, header.Filename, imageID)
		if err != nil {
			switch {
			case errors.Is(err, filestore.ErrInvalidImage):
				log.Error("uploaded file is not an image", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("file is not a valid image"))
			case errors.Is(err, filestore.ErrUnsupportedFormat):
				log.Error("uploaded image format is not allowed", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unsupported image format"))
			default:
				log.Error("failed to save file on disk", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to save file"))
			}
			return
		}

		image := &models.Image{
			ID:               imageID,
			OriginalFilename: header.Filename,
			FileSize:         meta.FileSize,
			Width:            int32Value(meta.Width),
			Height:           int32Value(meta.Height),
			Format:           stringValue(meta.Format),
			StoragePath:      path,
		}

		saved, err := imageSaver.SaveImage(r.Context(), image)
		if err != nil {
			log.Error("failed to save image metadata", sl.Err(err))
			files.DeleteImageFiles(imageID)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save image metadata"))
			return
		}

		rollback := func() {
			if delErr := imageSaver.DeleteImage(r.Context(), imageID); delErr != nil {
				log.Error("failed to roll back image record", sl.Err(delErr))
			}
			files.DeleteImageFiles(imageID)
		}

		kafkaMessage := struct {
			ImageID     uuid.UUID `json:"image_id"`
			StoragePath string    `json:"storage_path"`
		}{
			ImageID:     saved.ID,
			StoragePath: saved.StoragePath,
		}

		message, err := json.Marshal(kafkaMessage)
		if err != nil {
			log.Error("failed to marshal kafka message", sl.Err(err))
			rollback()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to prepare message"))
			return
		}

		if err = kafkaProducer.SendMessage(r.Context(), message); err != nil {
			log.Error("failed to publish message to kafka", sl.Err(err))
			rollback()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to start image processing"))
			return
		}

		log.Info("image uploaded and queued for processing", slog.String("image_id", saved.ID.String()))

		render.JSON(w, r, ImageResponse{
			Response: response.OK(),
			ImageID:  saved.ID,
		})
	}
}

func int32Value(v int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(v), Valid: true}
}

func stringValue(v string) sql.NullString {
	return sql.NullString{String: v, Valid: true}
}
