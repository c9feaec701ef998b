package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// Router builds the HTTP routes of the API
func (h *Handler) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/docs/doc.json", h.Docs)
		r.Get("/catalog", h.GetCatalog)

		r.Route("/matches/{matchId}", func(r chi.Router) {
			r.Get("/", h.GetMatch)
			r.Post("/open", h.OpenMatch)
			r.Put("/period", h.SetPeriod)

			r.Post("/shots", h.RecordShot)
			r.Post("/fouls", h.RecordFoul)
			r.Get("/events", h.ListEvents)
			r.Delete("/events", h.DeleteEventAt)
			r.Post("/events/import", h.ImportEvents)
			r.Delete("/events/{eventId}", h.DeleteEvent)

			r.Get("/stats", h.GetStats)
			r.Get("/ranking", h.GetRanking)
			r.Get("/report", h.GetReport)

			r.Get("/roster/{side}", h.GetRoster)
			r.Post("/roster/{side}/toggle", h.ToggleRoster)

			r.Get("/snapshot", h.GetSnapshot)
			r.Put("/snapshot", h.PutSnapshot)
		})
	})

	return r
}

// Docs serves the registered OpenAPI document
func (h *Handler) Docs(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusNotFound, "API docs not registered")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(doc)); err != nil {
		h.logger.Debugw("Failed to write API docs", "error", err)
	}
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debugw("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}
