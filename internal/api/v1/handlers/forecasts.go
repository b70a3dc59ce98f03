package handlers

import (
	"net/http"

	"ulascansenturk/forecast-api/internal/apperrors"
	"ulascansenturk/forecast-api/internal/service"
)

func (h *Handler) CreateForecast(w http.ResponseWriter, r *http.Request) {
	var req CreateForecastRequest
	if err := decodeRequest(r, &req, "cityId, type and time are required"); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	forecast, err := h.forecastService.Create(ctx, service.CreateForecastInput{
		CityID:  req.CityID,
		Type:    req.Type,
		Time:    req.Time.Time,
		Comment: req.Comment,
	})
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, forecast)
}

func (h *Handler) ListForecasts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	forecasts, err := h.forecastService.List(ctx)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecasts)
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	forecast, err := h.forecastService.Get(ctx, id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecast)
}

func (h *Handler) UpdateForecast(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req UpdateForecastRequest
	if err := decodeRequest(r, &req, "Invalid request body"); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	input := service.UpdateForecastInput{
		Type:         req.Type,
		Comment:      req.Comment.Value,
		ClearComment: req.Comment.Cleared(),
	}
	if req.Time != nil {
		input.Time = &req.Time.Time
	}

	forecast, err := h.forecastService.Update(ctx, id, input)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecast)
}

func (h *Handler) DeleteForecast(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	forecast, err := h.forecastService.Delete(ctx, id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecast)
}

func (h *Handler) ListCityForecasts(w http.ResponseWriter, r *http.Request) {
	cityID, err := parseID(r.PathValue("cityId"), "cityId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	forecasts, err := h.forecastService.ListByCity(ctx, cityID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecasts)
}

func (h *Handler) WeekAhead(w http.ResponseWriter, r *http.Request) {
	var cityID *uint

	if r.URL.Query().Has("cityId") {
		id, err := parseID(r.URL.Query().Get("cityId"), "cityId")
		if err != nil {
			respondWithAppError(w, r, apperrors.Validation("cityId must be a number if provided"))
			return
		}
		cityID = &id
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	forecasts, err := h.forecastService.WeekAhead(ctx, cityID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecasts)
}

func (h *Handler) TopDays(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.forecastService.TopDays(ctx, r.PathValue("type"), r.URL.Query().Get("year"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
