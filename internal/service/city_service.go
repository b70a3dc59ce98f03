package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ulascansenturk/forecast-api/internal/apperrors"
	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/db/forecasts"
	"ulascansenturk/forecast-api/internal/query"
	"ulascansenturk/forecast-api/internal/report"
)

type CityService interface {
	Create(ctx context.Context, name string) (*cities.City, error)
	List(ctx context.Context) ([]cities.City, error)
	Get(ctx context.Context, id uint) (*cities.City, error)
	Update(ctx context.Context, id uint, name string) (*cities.City, error)
	Delete(ctx context.Context, id uint) (*cities.City, error)
	Stats(ctx context.Context, yearToken string) ([]report.CityStats, error)
}

type cityService struct {
	cityRepo     cities.Repository
	forecastRepo forecasts.Repository
	clock        func() time.Time
}

func NewCityService(cityRepo cities.Repository, forecastRepo forecasts.Repository, clock func() time.Time) CityService {
	return &cityService{
		cityRepo:     cityRepo,
		forecastRepo: forecastRepo,
		clock:        clock,
	}
}

func (s *cityService) Create(ctx context.Context, name string) (*cities.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("City name is required")
	}

	return s.cityRepo.Create(ctx, name)
}

func (s *cityService) List(ctx context.Context) ([]cities.City, error) {
	return s.cityRepo.List(ctx)
}

func (s *cityService) Get(ctx context.Context, id uint) (*cities.City, error) {
	return s.cityRepo.Get(ctx, id)
}

func (s *cityService) Update(ctx context.Context, id uint, name string) (*cities.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("City name is required")
	}

	return s.cityRepo.Update(ctx, id, name)
}

func (s *cityService) Delete(ctx context.Context, id uint) (*cities.City, error) {
	return s.cityRepo.Delete(ctx, id)
}

// Stats counts forecasts per city and weather type within the given year.
// The year window is inclusive on both ends (Dec 31 23:59:59).
func (s *cityService) Stats(ctx context.Context, yearToken string) ([]report.CityStats, error) {
	year, err := report.ParseYear(yearToken, s.clock())
	if err != nil {
		return nil, err
	}

	counts, err := s.forecastRepo.CountByCityAndType(ctx, query.YearInclusive(year))
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return []report.CityStats{}, nil
	}

	names, err := s.cityRepo.Names(ctx)
	if err != nil {
		return nil, err
	}

	stats := report.CityTypeStats(counts, names)

	log.Debug().Int("year", year).Int("cities", len(stats)).Msg("city stats built")

	return stats, nil
}
