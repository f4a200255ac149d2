package save

import (
	"autozonepro/internal/service/courier"
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type CourierCreator interface {
	Create(ctx context.Context, req courier.Request) (courier.Result, error)
}

type Response struct {
	Message courier.Result `json:"message"`
}

type ErrorResponse struct {
	ExcType string `json:"exc_type"`
	Message string `json:"message"`
}

func CreateCourierDetails(log *slog.Logger, creator CourierCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.courier.save.CreateCourierDetails"

		var req courier.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{ExcType: "ValidationError", Message: "Bad request: invalid JSON"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		res, err := creator.Create(ctx, req)
		if err != nil {
			var (
				validationErr *courier.ValidationError
				creationErr   *courier.CreationError
			)

			switch {
			case errors.As(err, &validationErr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, ErrorResponse{ExcType: "ValidationError", Message: validationErr.Message()})
			case errors.As(err, &creationErr):
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, ErrorResponse{ExcType: "CreationError", Message: creationErr.Message()})
			default:
				log.Error("Ошибка создания courier details", slog.String("op", op), slog.String("error", err.Error()))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, ErrorResponse{ExcType: "Exception", Message: "Internal server error"})
			}
			return
		}

		render.JSON(w, r, Response{Message: res})
	}
}
