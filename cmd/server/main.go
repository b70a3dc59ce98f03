package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ulascansenturk/forecast-api/config"
	"ulascansenturk/forecast-api/internal/api/v1/handlers"
	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/db/forecasts"
	"ulascansenturk/forecast-api/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := conf.RequireAdminCredentials(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, err := initializeDatabase(conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	cityRepo := cities.NewRepository(db)
	forecastRepo := forecasts.NewRepository(db)

	cityService := service.NewCityService(cityRepo, forecastRepo, time.Now)
	forecastService := service.NewForecastService(forecastRepo, cityRepo, time.Now)

	handler := handlers.Chain(
		handlers.NewHandler(cityService, forecastService, conf.HTTPTimeoutDuration()),
		handlers.RequestLogging(logger),
		handlers.RateLimit(newLimiter(conf)),
		handlers.BasicAuth(handlers.Credentials{
			User:         conf.AdminUser,
			Password:     conf.AdminPassword,
			PasswordHash: conf.AdminPasswordHash,
		}, "/health"),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

// newLimiter returns nil when rate limiting is switched off.
func newLimiter(conf *config.Config) *rate.Limiter {
	if conf.RateLimitRPS <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(conf.RateLimitRPS), conf.RateLimitBurst)
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&cities.City{}, &forecasts.Forecast{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
