package verificationHistory

import (
	"github.com/dabolichin/ligence-task/internal/lib/api/response"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type HistoryItem struct {
	ID                 uuid.UUID                 `json:"id"`
	ModificationID     uuid.UUID                 `json:"modification_id"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	IsReversible       *bool                     `json:"is_reversible,omitempty"`
	VerifiedWithHash   bool                      `json:"verified_with_hash"`
	VerifiedWithPixels bool                      `json:"verified_with_pixels"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// Response echoes the effective limit and offset so callers can page
// without re-deriving the clamped values.
type Response struct {
	response.Response
	History    []HistoryItem `json:"history"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
	TotalCount int           `json:"total_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HistoryProvider
type HistoryProvider interface {
	History(limit, offset int) ([]models.VerificationResult, int, error)
}

func New(log *slog.Logger, provider HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.verification.verificationHistory.New"

		log = log.With(slog.String("op", op))

		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				log.Error("failed to parse limit", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit parameter"))
				return
			}
			limit = v
		}

		offset := 0
		if raw := r.URL.Query().Get("offset"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				log.Error("failed to parse offset", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid offset parameter"))
				return
			}
			offset = v
		}

		// Out-of-range values are clamped rather than rejected.
		if limit < 1 {
			limit = 1
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		if offset < 0 {
			offset = 0
		}

		results, total, err := provider.History(limit, offset)
		if err != nil {
			log.Error("failed to get verification history", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get history"))
			return
		}

		history := make([]HistoryItem, 0, len(results))
		for _, result := range results {
			item := HistoryItem{
				ID:                 result.ID,
				ModificationID:     result.ModificationID,
				VerificationStatus: result.Status,
				VerifiedWithHash:   result.VerifiedWithHash,
				VerifiedWithPixels: result.VerifiedWithPixels,
				CreatedAt:          result.CreatedAt,
				UpdatedAt:          result.UpdatedAt,
			}
			if result.IsReversible.Valid {
				reversible := result.IsReversible.Bool
				item.IsReversible = &reversible
			}
			history = append(history, item)
		}

		log.Info("history retrieved",
			slog.Int("count", len(history)),
			slog.Int("total", total),
		)

		render.JSON(w, r, Response{
			Response:   response.OK(),
			History:    history,
			Limit:      limit,
			Offset:     offset,
			TotalCount: total,
		})
	}
}
