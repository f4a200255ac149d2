package main

import (
	"autozonepro/http-server/courier/save"
	"autozonepro/http-server/health"
	getperformance "autozonepro/http-server/report/performance"
	"autozonepro/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"log/slog"
)

func routes(cfg config.Config, log *slog.Logger, creator save.CourierCreator, builder getperformance.ReportBuilder) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/health", health.Health())

	router.Post("/api/method/create_courier_details", save.CreateCourierDetails(log, creator))

	router.Get("/api/report/packing-performance", getperformance.GetPackingPerformance(log, builder))

	return router
}
