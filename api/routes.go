// Package api exposes the city/country tables as a JSON HTTP API.
package api

import (
	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers every route on the router.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/", h.Root)

	router.Route("/api/cities", func(r chi.Router) {
		r.Get("/", h.ListCities)
		r.Post("/add", h.AddCity)
		r.Put("/edit", h.EditCity)
		r.Delete("/delete", h.DeleteCities)
		r.Post("/check-id", h.CheckCityID)
	})

	router.NotFound(h.NotFound)
}
