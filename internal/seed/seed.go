package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/db/forecasts"
	"ulascansenturk/forecast-api/internal/weather"
)

const defaultBatchSize = 500

// Hours (UTC) at which a forecast is generated for every day.
var Hours = []int{6, 12, 18, 23}

const commentChance = 0.4

var comments = map[weather.Type][]string{
	weather.Sunny:  {"Beautiful weather", "Sunny and warm", "Perfect beach day"},
	weather.Rainy:  {"Rainy", "Bring an umbrella", "Showers during the day"},
	weather.Snowy:  {"Snowfall", "Snow possible", "Cold and snowy"},
	weather.Cloudy: {"Overcast", "Mostly cloudy", "Grey skies"},
	weather.Windy:  {"Windy", "Strong gusts", "Bora blowing"},
}

type Options struct {
	Year      int
	Cities    []string
	BatchSize int
}

type Summary struct {
	Cities    int
	Forecasts int
}

// Generate builds the forecasts of one city for every day of year. The
// output only depends on the state of rng.
func Generate(cityID uint, year int, rng *rand.Rand) []forecasts.Forecast {
	types := weather.All()

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	result := make([]forecasts.Forecast, 0, 366*len(Hours))
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		for _, hour := range Hours {
			t := types[rng.Intn(len(types))]
			result = append(result, forecasts.Forecast{
				CityID:  cityID,
				Type:    t,
				Time:    day.Add(time.Duration(hour) * time.Hour),
				Comment: randomComment(t, rng),
			})
		}
	}

	return result
}

func randomComment(t weather.Type, rng *rand.Rand) *string {
	if rng.Float64() >= commentChance {
		return nil
	}

	options := comments[t]
	comment := options[rng.Intn(len(options))]
	return &comment
}

// Run wipes both tables and refills them in a single transaction.
func Run(ctx context.Context, db *gorm.DB, opts Options, rng *rand.Rand) (Summary, error) {
	if len(opts.Cities) == 0 {
		return Summary{}, fmt.Errorf("no cities to seed")
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var summary Summary

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&forecasts.Forecast{}).Error; err != nil {
			return fmt.Errorf("wiping forecasts: %w", err)
		}
		if err := wipe.Delete(&cities.City{}).Error; err != nil {
			return fmt.Errorf("wiping cities: %w", err)
		}

		for _, name := range opts.Cities {
			city := cities.City{Name: name}
			if err := tx.Create(&city).Error; err != nil {
				return fmt.Errorf("creating city %q: %w", name, err)
			}
			summary.Cities++

			rows := Generate(city.ID, opts.Year, rng)
			if err := tx.CreateInBatches(&rows, batchSize).Error; err != nil {
				return fmt.Errorf("creating forecasts for %q: %w", name, err)
			}
			summary.Forecasts += len(rows)

			log.Info().Str("city", name).Int("forecasts", len(rows)).Msg("seeded city")
		}

		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	return summary, nil
}
