package weather

import (
	"strings"

	"ulascansenturk/forecast-api/internal/apperrors"
)

type Type string

const (
	Sunny  Type = "SUNNY"
	Rainy  Type = "RAINY"
	Snowy  Type = "SNOWY"
	Cloudy Type = "CLOUDY"
	Windy  Type = "WINDY"
)

var allTypes = []Type{Sunny, Rainy, Snowy, Cloudy, Windy}

func All() []Type {
	types := make([]Type, len(allTypes))
	copy(types, allTypes)
	return types
}

func (t Type) Valid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Parse normalizes a user supplied token (any case) into a Type.
func Parse(token string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(token)))
	if !t.Valid() {
		return "", apperrors.Validation("Invalid weather type. Allowed: %s", allowedList())
	}
	return t, nil
}

func allowedList() string {
	names := make([]string, len(allTypes))
	for i, t := range allTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
