package httpapi

import (
	"net/http"

	"orbiz-dashboard-service/internal/config"
	"orbiz-dashboard-service/internal/http/handlers"
	"orbiz-dashboard-service/internal/middleware"
	"orbiz-dashboard-service/internal/pdf"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger, cfg config.Config, exporter *pdf.Exporter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
			},
			MaxAge: 300,
		}

		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{Logger: logger, Config: cfg, PDF: exporter}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/report", h.ReportGenerate)
		r.Post("/report/stale-orders.pdf", h.ReportStaleOrdersPDF)
	})

	return r
}
