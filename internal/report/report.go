// Package report turns raw forecast rows into city level statistics and
// rankings. Nothing in here touches storage.
package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"ulascansenturk/forecast-api/internal/apperrors"
	"ulascansenturk/forecast-api/internal/weather"
)

const dayLayout = "2006-01-02"

// TypeCount is the number of forecasts of one type for one city.
type TypeCount struct {
	CityID uint
	Type   weather.Type
	Count  int
}

// Occurrence is a single forecast of the ranked type.
type Occurrence struct {
	CityID   uint
	CityName string
	Time     time.Time
}

type CityStats struct {
	CityID   uint                 `json:"cityId"`
	CityName string               `json:"cityName,omitempty"`
	Stats    map[weather.Type]int `json:"stats"`
}

type CityDays struct {
	CityID    uint   `json:"cityId"`
	CityName  string `json:"cityName"`
	DaysCount int    `json:"daysCount"`
}

type TopDaysReport struct {
	Year    int          `json:"year"`
	Type    weather.Type `json:"type"`
	Results []CityDays   `json:"results"`
}

// CityTypeStats folds per type counts into one record per city. Cities with
// no counts are not reported and types a city never had stay out of its map.
func CityTypeStats(counts []TypeCount, names map[uint]string) []CityStats {
	byCity := make(map[uint]map[weather.Type]int)

	for _, c := range counts {
		if c.Count <= 0 {
			continue
		}
		stats, ok := byCity[c.CityID]
		if !ok {
			stats = make(map[weather.Type]int)
			byCity[c.CityID] = stats
		}
		stats[c.Type] += c.Count
	}

	result := make([]CityStats, 0, len(byCity))
	for cityID, stats := range byCity {
		result = append(result, CityStats{
			CityID:   cityID,
			CityName: names[cityID],
			Stats:    stats,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CityID < result[j].CityID
	})

	return result
}

// TopDays ranks cities by the number of distinct UTC calendar days on which
// they had an occurrence. Ties are ordered by city id.
func TopDays(occurrences []Occurrence) []CityDays {
	type cityDays struct {
		name string
		days map[string]struct{}
	}

	byCity := make(map[uint]*cityDays)
	for _, o := range occurrences {
		entry, ok := byCity[o.CityID]
		if !ok {
			entry = &cityDays{name: o.CityName, days: make(map[string]struct{})}
			byCity[o.CityID] = entry
		}
		entry.days[o.Time.UTC().Format(dayLayout)] = struct{}{}
	}

	result := make([]CityDays, 0, len(byCity))
	for cityID, entry := range byCity {
		result = append(result, CityDays{
			CityID:    cityID,
			CityName:  entry.name,
			DaysCount: len(entry.days),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DaysCount != result[j].DaysCount {
			return result[i].DaysCount > result[j].DaysCount
		}
		return result[i].CityID < result[j].CityID
	})

	return result
}

const (
	MinYear = 1
	MaxYear = 9999
)

// ParseYear reads an optional year token, defaulting to the year of now.
func ParseYear(token string, now time.Time) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return now.UTC().Year(), nil
	}

	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, apperrors.Validation("Year must be a number")
	}
	if year < MinYear || year > MaxYear {
		return 0, apperrors.Validation("Year must be between %d and %d", MinYear, MaxYear)
	}

	return year, nil
}
