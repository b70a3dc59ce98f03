package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"ulascansenturk/forecast-api/internal/apperrors"
	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/db/forecasts"
	"ulascansenturk/forecast-api/internal/query"
	"ulascansenturk/forecast-api/internal/report"
	"ulascansenturk/forecast-api/internal/weather"
)

type CreateForecastInput struct {
	CityID  uint
	Type    string
	Time    time.Time
	Comment *string
}

// UpdateForecastInput carries only the fields the client sent. ClearComment
// is set when the comment was sent as null.
type UpdateForecastInput struct {
	Type         *string
	Time         *time.Time
	Comment      *string
	ClearComment bool
}

type ForecastService interface {
	Create(ctx context.Context, input CreateForecastInput) (*forecasts.Forecast, error)
	List(ctx context.Context) ([]forecasts.Forecast, error)
	Get(ctx context.Context, id uint) (*forecasts.Forecast, error)
	Update(ctx context.Context, id uint, input UpdateForecastInput) (*forecasts.Forecast, error)
	Delete(ctx context.Context, id uint) (*forecasts.Forecast, error)
	ListByCity(ctx context.Context, cityID uint) ([]forecasts.Forecast, error)
	WeekAhead(ctx context.Context, cityID *uint) ([]forecasts.Forecast, error)
	TopDays(ctx context.Context, typeToken, yearToken string) (report.TopDaysReport, error)
}

type forecastService struct {
	forecastRepo forecasts.Repository
	cityRepo     cities.Repository
	clock        func() time.Time
}

func NewForecastService(forecastRepo forecasts.Repository, cityRepo cities.Repository, clock func() time.Time) ForecastService {
	return &forecastService{
		forecastRepo: forecastRepo,
		cityRepo:     cityRepo,
		clock:        clock,
	}
}

func (s *forecastService) Create(ctx context.Context, input CreateForecastInput) (*forecasts.Forecast, error) {
	if input.CityID == 0 || input.Type == "" || input.Time.IsZero() {
		return nil, apperrors.Validation("cityId, type and time are required")
	}

	t, err := weather.Parse(input.Type)
	if err != nil {
		return nil, err
	}

	forecast := &forecasts.Forecast{
		CityID:  input.CityID,
		Type:    t,
		Time:    input.Time,
		Comment: input.Comment,
	}

	if err := s.forecastRepo.Create(ctx, forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}

func (s *forecastService) List(ctx context.Context) ([]forecasts.Forecast, error) {
	return s.forecastRepo.List(ctx)
}

func (s *forecastService) Get(ctx context.Context, id uint) (*forecasts.Forecast, error) {
	return s.forecastRepo.Get(ctx, id)
}

func (s *forecastService) Update(ctx context.Context, id uint, input UpdateForecastInput) (*forecasts.Forecast, error) {
	changes := forecasts.Changes{
		Time:         input.Time,
		Comment:      input.Comment,
		ClearComment: input.ClearComment,
	}

	if input.Type != nil {
		t, err := weather.Parse(*input.Type)
		if err != nil {
			return nil, err
		}
		changes.Type = &t
	}

	return s.forecastRepo.Update(ctx, id, changes)
}

func (s *forecastService) Delete(ctx context.Context, id uint) (*forecasts.Forecast, error) {
	return s.forecastRepo.Delete(ctx, id)
}

func (s *forecastService) ListByCity(ctx context.Context, cityID uint) ([]forecasts.Forecast, error) {
	if _, err := s.cityRepo.Get(ctx, cityID); err != nil {
		return nil, err
	}

	return s.forecastRepo.ListByCity(ctx, cityID)
}

func (s *forecastService) WeekAhead(ctx context.Context, cityID *uint) ([]forecasts.Forecast, error) {
	return s.forecastRepo.ListInRange(ctx, query.WeekAhead(s.clock()), cityID)
}

// TopDays ranks cities by how many distinct days had the given weather type
// in the year. Tokens are validated before storage is touched.
func (s *forecastService) TopDays(ctx context.Context, typeToken, yearToken string) (report.TopDaysReport, error) {
	t, err := weather.Parse(typeToken)
	if err != nil {
		return report.TopDaysReport{}, err
	}

	year, err := report.ParseYear(yearToken, s.clock())
	if err != nil {
		return report.TopDaysReport{}, err
	}

	occurrences, err := s.forecastRepo.Occurrences(ctx, t, query.YearHalfOpen(year))
	if err != nil {
		return report.TopDaysReport{}, err
	}

	results := report.TopDays(occurrences)

	log.Debug().Int("year", year).Str("type", t.String()).Int("cities", len(results)).Msg("top days report built")

	return report.TopDaysReport{
		Year:    year,
		Type:    t,
		Results: results,
	}, nil
}
