package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ulascansenturk/forecast-api/internal/service"
)

type Handler struct {
	cityService     service.CityService
	forecastService service.ForecastService
	timeout         time.Duration
	mux             *http.ServeMux
}

func NewHandler(cityService service.CityService, forecastService service.ForecastService, timeout time.Duration) *Handler {
	h := &Handler{
		cityService:     cityService,
		forecastService: forecastService,
		timeout:         timeout,
		mux:             http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /health", h.Health)

	h.mux.HandleFunc("POST /cities", h.CreateCity)
	h.mux.HandleFunc("GET /cities", h.ListCities)
	h.mux.HandleFunc("GET /cities/stats", h.CityStats)
	h.mux.HandleFunc("GET /cities/{id}", h.GetCity)
	h.mux.HandleFunc("PUT /cities/{id}", h.UpdateCity)
	h.mux.HandleFunc("DELETE /cities/{id}", h.DeleteCity)

	h.mux.HandleFunc("POST /forecasts", h.CreateForecast)
	h.mux.HandleFunc("GET /forecasts", h.ListForecasts)
	h.mux.HandleFunc("GET /forecasts/week", h.WeekAhead)
	h.mux.HandleFunc("GET /forecasts/top/{type}", h.TopDays)
	h.mux.HandleFunc("GET /forecasts/city/{cityId}", h.ListCityForecasts)
	h.mux.HandleFunc("GET /forecasts/{id}", h.GetForecast)
	h.mux.HandleFunc("PUT /forecasts/{id}", h.UpdateForecast)
	h.mux.HandleFunc("DELETE /forecasts/{id}", h.DeleteForecast)

	// Known paths hit with an unsupported method.
	h.mux.HandleFunc("/health", methodNotAllowed(http.MethodGet))
	h.mux.HandleFunc("/cities", methodNotAllowed(http.MethodGet, http.MethodPost))
	h.mux.HandleFunc("/cities/{id}", methodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))
	h.mux.HandleFunc("/forecasts", methodNotAllowed(http.MethodGet, http.MethodPost))
	h.mux.HandleFunc("/forecasts/{id}", methodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))
	h.mux.HandleFunc("/forecasts/top/{type}", methodNotAllowed(http.MethodGet))
	h.mux.HandleFunc("/forecasts/city/{cityId}", methodNotAllowed(http.MethodGet))

	h.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})

	return h
}

func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
