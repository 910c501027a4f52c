package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"worldcities/models/request"
	"worldcities/world"

	"github.com/charmbracelet/log"
)

// CityService is the part of world.Service the handlers depend on.
type CityService interface {
	ListCities() ([]world.CityRow, error)
	CreateCity(in world.CityInput) (int, error)
	EditCity(in world.CityEdit) (int, error)
	DeleteCities(ids []int) error
	CityExists(id int) (bool, error)
}

type Handlers struct {
	service CityService
}

func NewHandlers(service CityService) *Handlers {
	return &Handlers{service: service}
}

func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Cities of the World"))
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("404 Error: Page Not Found"))
}

func (h *Handlers) ListCities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListCities()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) AddCity(w http.ResponseWriter, r *http.Request) {
	var req request.AddCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, world.ValidationError{Field: "body"})
		return
	}

	id, err := h.service.CreateCity(world.CityInput{
		Name:       req.CityName,
		District:   req.District,
		Population: req.Population,
		Country:    req.Country,
		Region:     req.Region,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	log.Info("city added", "id", id, "name", req.CityName)
	writeJSON(w, http.StatusOK, map[string]string{"message": "status 200: Successfully added data"})
}

func (h *Handlers) EditCity(w http.ResponseWriter, r *http.Request) {
	var req request.EditCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, world.ValidationError{Field: "body"})
		return
	}

	id, err := h.service.EditCity(world.CityEdit{
		ID: req.CityID,
		CityInput: world.CityInput{
			Name:       req.CityName,
			District:   req.District,
			Population: req.CityPopulation,
			Country:    req.CountryName,
			Region:     req.Region,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	log.Info("city edited", "id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "200 OK: Successfully edited"})
}

func (h *Handlers) DeleteCities(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteCitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, world.ValidationError{Field: "body"})
		return
	}

	if err := h.service.DeleteCities(req.Selected); err != nil {
		writeError(w, err)
		return
	}

	log.Info("cities deleted", "count", len(req.Selected))
	writeJSON(w, http.StatusOK, map[string]string{"message": "200 OK: Successfully deleted selection"})
}

func (h *Handlers) CheckCityID(w http.ResponseWriter, r *http.Request) {
	var req request.CheckCityIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, world.ValidationError{Field: "body"})
		return
	}

	exists, err := h.service.CityExists(req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}

// writeError is the single place a failure becomes a response, so no
// handler can double-respond.
func writeError(w http.ResponseWriter, err error) {
	var verr world.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.Is(err, world.ErrCityNotFound), errors.Is(err, world.ErrCountryNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
