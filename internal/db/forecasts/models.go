package forecasts

import (
	"time"

	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/weather"
)

type Forecast struct {
	ID      uint         `json:"id" gorm:"primaryKey"`
	CityID  uint         `json:"cityId" gorm:"not null;index:idx_forecasts_city_time"`
	Type    weather.Type `json:"type" gorm:"type:varchar(16);not null;index:idx_forecasts_type_time"`
	Time    time.Time    `json:"time" gorm:"type:timestamptz;not null;index:idx_forecasts_city_time;index:idx_forecasts_type_time"`
	Comment *string      `json:"comment"`
	City    *cities.City `json:"city,omitempty" gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Forecast) TableName() string {
	return "forecasts"
}

// Changes is a partial update; nil fields are left as they are.
// ClearComment sets the comment to NULL and wins over Comment.
type Changes struct {
	Type         *weather.Type
	Time         *time.Time
	Comment      *string
	ClearComment bool
}

func (c Changes) Empty() bool {
	return c.Type == nil && c.Time == nil && c.Comment == nil && !c.ClearComment
}

func (c Changes) columns() map[string]interface{} {
	columns := make(map[string]interface{}, 3)
	if c.Type != nil {
		columns["type"] = *c.Type
	}
	if c.Time != nil {
		columns["time"] = *c.Time
	}
	if c.ClearComment {
		columns["comment"] = nil
	} else if c.Comment != nil {
		columns["comment"] = *c.Comment
	}
	return columns
}

func (c Changes) apply(f *Forecast) {
	if c.Type != nil {
		f.Type = *c.Type
	}
	if c.Time != nil {
		f.Time = *c.Time
	}
	if c.ClearComment {
		f.Comment = nil
	} else if c.Comment != nil {
		comment := *c.Comment
		f.Comment = &comment
	}
}
