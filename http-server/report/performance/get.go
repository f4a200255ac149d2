package performance

import (
	"autozonepro/internal/service/performance"
	"context"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type ReportBuilder interface {
	Execute(ctx context.Context, f performance.Filters) (*performance.Report, error)
}

func parseFilter(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func GetPackingPerformance(log *slog.Logger, builder ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.performance.GetPackingPerformance"

		month, err := parseFilter(r, "month")
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		year, err := parseFilter(r, "year")
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		// на отчёт времени побольше, там четыре выборки
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report, err := builder.Execute(ctx, performance.Filters{Month: month, Year: year})
		if err != nil {
			if errors.Is(err, performance.ErrInvalidPeriod) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to build packing performance", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, report)
	}
}
