package verificationStatus

import (
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

// Response reports the verdict for one modification. IsReversible and
// CompletedAt are absent while the verification is still pending.
type Response struct {
	response.Response
	ModificationID     uuid.UUID                 `json:"modification_id"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	IsReversible       *bool                     `json:"is_reversible,omitempty"`
	VerifiedWithHash   bool                      `json:"verified_with_hash"`
	VerifiedWithPixels bool                      `json:"verified_with_pixels"`
	CreatedAt          time.Time                 `json:"created_at"`
	CompletedAt        *time.Time                `json:"completed_at,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResultProvider
type ResultProvider interface {
	GetByModificationID(modificationID uuid.UUID) (*models.VerificationResult, error)
}

func New(log *slog.Logger, provider ResultProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.verification.verificationStatus.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		modificationID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse modification ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid modification ID"))
			return
		}

		result, err := provider.GetByModificationID(modificationID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn("verification not found",
					slog.String("modification_id", modificationID.String()),
				)
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("verification not found"))
				return
			}

			log.Error("failed to get verification result", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get verification"))
			return
		}

		resp := Response{
			Response:           response.OK(),
			ModificationID:     result.ModificationID,
			VerificationStatus: result.Status,
			VerifiedWithHash:   result.VerifiedWithHash,
			VerifiedWithPixels: result.VerifiedWithPixels,
			CreatedAt:          result.CreatedAt,
		}

		if result.IsReversible.Valid {
			resp.IsReversible = &result.IsReversible.Bool
		}
		if result.Status == models.VerificationCompleted {
			resp.CompletedAt = &result.UpdatedAt
		}

		log.Info("verification status retrieved",
			slog.String("modification_id", modificationID.String()),
			slog.String("status", string(result.Status)),
		)

		render.JSON(w, r, resp)
	}
}
