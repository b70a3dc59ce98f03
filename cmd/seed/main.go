package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ulascansenturk/forecast-api/config"
	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/db/forecasts"
	"ulascansenturk/forecast-api/internal/seed"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Str("service_name", conf.ServiceName).
		Str("command", "seed").
		Timestamp().
		Logger()

	db, err := gorm.Open(postgres.Open(conf.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(&cities.City{}, &forecasts.Forecast{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	summary, err := seed.Run(ctx, db, seed.Options{
		Year:   conf.SeedYear,
		Cities: conf.SeedCities,
	}, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().
		Int("year", conf.SeedYear).
		Int("cities", summary.Cities).
		Int("forecasts", summary.Forecasts).
		Msg("seeding done")
}
