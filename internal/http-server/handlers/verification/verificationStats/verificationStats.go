package verificationStats

import (
	"github.com/dabolichin/ligence-task/internal/lib/api/response"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	Statistics models.VerificationStatistics `json:"statistics"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatisticsProvider
type StatisticsProvider interface {
	Statistics() (models.VerificationStatistics, error)
}

func New(log *slog.Logger, provider StatisticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.verification.verificationStats.New"

		log = log.With(slog.String("op", op))

		stats, err := provider.Statistics()
		if err != nil {
			log.Error("failed to get verification statistics", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get statistics"))
			return
		}

		log.Info("statistics retrieved",
			slog.Int("total", stats.Total),
			slog.Int("pending", stats.Pending),
		)

		render.JSON(w, r, Response{
			Response:   response.OK(),
			Statistics: stats,
		})
	}
}
