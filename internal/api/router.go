package api

import (
	"net/http"

	_ "hoteldesk/docs"
	"hoteldesk/internal/api/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(h *handler.Handler, backendProxy http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(RequestMetrics)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/drafts", h.CreateDraft)
		r.Get("/drafts/{id}", h.GetDraft)
		r.Patch("/drafts/{id}", h.UpdateDraft)
		r.Delete("/drafts/{id}", h.DeleteDraft)
		r.Post("/drafts/{id}/submit", h.SubmitDraft)

		r.Get("/bookings", h.ListBookings)

		r.Get("/currency/rates", h.GetRates)
		r.Get("/currency/convert", h.Convert)
		r.Post("/currency/tracked", h.AddCurrency)

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)
	})

	// Same-origin passthrough so the dashboard never talks to the hotel
	// backend directly.
	router.Handle("/backend/*", http.StripPrefix("/backend", backendProxy))

	return router
}
