package handlers

import (
	"bytes"
	"encoding/json"
	"time"

	"ulascansenturk/forecast-api/internal/apperrors"
)

type CityRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateForecastRequest struct {
	CityID  uint       `json:"cityId" validate:"required"`
	Type    string     `json:"type" validate:"required"`
	Time    *Timestamp `json:"time" validate:"required"`
	Comment *string    `json:"comment"`
}

type UpdateForecastRequest struct {
	Type    *string        `json:"type"`
	Time    *Timestamp     `json:"time"`
	Comment OptionalString `json:"comment"`
}

// Timestamp accepts RFC 3339 as well as zone-less date-times and plain dates,
// which are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperrors.Validation("time must be an ISO 8601 date or date-time")
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return apperrors.Validation("time must be an ISO 8601 date or date-time")
}

// OptionalString tells a missing field apart from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// Cleared reports whether the field was sent as null.
func (o OptionalString) Cleared() bool {
	return o.Set && o.Value == nil
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
