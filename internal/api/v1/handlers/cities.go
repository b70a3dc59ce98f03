package handlers

import (
	"net/http"
)

func (h *Handler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequest
	if err := decodeRequest(r, &req, "City name is required"); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	city, err := h.cityService.Create(ctx, req.Name)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, city)
}

func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	cities, err := h.cityService.List(ctx)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, cities)
}

func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	city, err := h.cityService.Get(ctx, id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, city)
}

func (h *Handler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req CityRequest
	if err := decodeRequest(r, &req, "City name is required"); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	city, err := h.cityService.Update(ctx, id, req.Name)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, city)
}

func (h *Handler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	city, err := h.cityService.Delete(ctx, id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, city)
}

func (h *Handler) CityStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	stats, err := h.cityService.Stats(ctx, r.URL.Query().Get("year"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
