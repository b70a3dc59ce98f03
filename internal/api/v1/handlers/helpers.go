package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"ulascansenturk/forecast-api/internal/apperrors"
)

var validate = validator.New()

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusUnauthorized:
		errorCode = "UNAUTHORIZED"
		title = "Unauthorized"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusConflict:
		errorCode = "CONFLICT"
		title = "Conflict"
	case http.StatusUnprocessableEntity:
		errorCode = "VALIDATION_ERROR"
		title = "Unprocessable Entity"
	case http.StatusTooManyRequests:
		errorCode = "TOO_MANY_REQUESTS"
		title = "Too Many Requests"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

// respondWithAppError maps the error taxonomy onto HTTP statuses. Unclassified
// errors are logged and hidden behind a generic 500.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	code := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation:
		code = http.StatusUnprocessableEntity
	case apperrors.KindNotFound:
		code = http.StatusNotFound
	case apperrors.KindConflict:
		code = http.StatusConflict
	case apperrors.KindUnauthorized:
		code = http.StatusUnauthorized
	}

	respondWithError(w, code, apperrors.Message(err))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// decodeRequest reads a JSON body into dst and runs struct validation on it.
// invalidMessage is returned to the client when validation fails.
func decodeRequest(r *http.Request, dst interface{}, invalidMessage string) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if apperrors.Is(err, apperrors.KindValidation) {
			return err
		}
		return apperrors.Validation("Invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		return apperrors.Validation(invalidMessage)
	}

	return nil
}

func parseID(raw, field string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validation("%s must be a number", field)
	}
	return uint(id), nil
}
