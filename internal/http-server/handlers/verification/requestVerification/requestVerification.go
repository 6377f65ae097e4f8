package requestVerification

import (
	"errors"
	"github.com/dabolichin/ligence-task/internal/lib/api/response"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

const (
	ResultAccepted      = "accepted"
	ResultAlreadyExists = "already_exists"
)

type Request struct {
	ImageID        uuid.UUID `json:"image_id" validate:"required"`
	ModificationID uuid.UUID `json:"modification_id" validate:"required"`
}

type Response struct {
	response.Response
	ModificationID uuid.UUID `json:"modification_id"`
	Result         string    `json:"result"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResultChecker
type ResultChecker interface {
	Exists(modificationID uuid.UUID) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Dispatcher
type Dispatcher interface {
	Dispatch(imageID, modificationID uuid.UUID) error
}

func New(log *slog.Logger, checker ResultChecker, dispatcher Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.verification.requestVerification.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded",
			slog.String("image_id", req.ImageID.String()),
			slog.String("modification_id", req.ModificationID.String()),
		)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		exists, err := checker.Exists(req.ModificationID)
		if err != nil {
			log.Error("failed to check existing verification", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check verification status"))
			return
		}

		if exists {
			log.Info("verification already exists",
				slog.String("modification_id", req.ModificationID.String()),
			)
			render.JSON(w, r, Response{
				Response:       response.OK(),
				ModificationID: req.ModificationID,
				Result:         ResultAlreadyExists,
			})
			return
		}

		if err = dispatcher.Dispatch(req.ImageID, req.ModificationID); err != nil {
			if errors.Is(err, worker.ErrQueueFull) {
				log.Warn("verification queue is full",
					slog.String("modification_id", req.ModificationID.String()),
				)
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("verification queue is full"))
				return
			}

			log.Error("failed to dispatch verification", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to start verification"))
			return
		}

		log.Info("verification accepted",
			slog.String("modification_id", req.ModificationID.String()),
		)

		render.JSON(w, r, Response{
			Response:       response.OK(),
			ModificationID: req.ModificationID,
			Result:         ResultAccepted,
		})
	}
}
