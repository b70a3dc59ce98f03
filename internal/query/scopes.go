package query

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ulascansenturk/forecast-api/internal/weather"
)

const (
	forecastTime   = "forecasts.time"
	forecastType   = "forecasts.type"
	forecastCityID = "forecasts.city_id"
)

type Scope func(*gorm.DB) *gorm.DB

// ByID restricts a query to a single row of the model's table.
func ByID(id uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.PrimaryColumn, Value: id})
	}
}

func Within(r TimeRange) Scope {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where(forecastTime+" >= ?", r.Start)
		if r.EndInclusive {
			return db.Where(forecastTime+" <= ?", r.End)
		}
		return db.Where(forecastTime+" < ?", r.End)
	}
}

func OfType(t weather.Type) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(forecastType+" = ?", t)
	}
}

// ForCity narrows forecasts to one city. A nil id leaves the query untouched.
func ForCity(cityID *uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if cityID == nil {
			return db
		}
		return db.Where(forecastCityID+" = ?", *cityID)
	}
}

func OrderedByTime(db *gorm.DB) *gorm.DB {
	return db.Order(forecastTime + " ASC")
}
