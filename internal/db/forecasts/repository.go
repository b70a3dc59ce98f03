package forecasts

import (
	"context"

	"gorm.io/gorm"

	"ulascansenturk/forecast-api/internal/db/dberrors"
	"ulascansenturk/forecast-api/internal/query"
	"ulascansenturk/forecast-api/internal/report"
	"ulascansenturk/forecast-api/internal/weather"
)

const entityName = "Forecast"

type Repository interface {
	Create(ctx context.Context, forecast *Forecast) error
	List(ctx context.Context) ([]Forecast, error)
	Get(ctx context.Context, id uint) (*Forecast, error)
	Update(ctx context.Context, id uint, changes Changes) (*Forecast, error)
	Delete(ctx context.Context, id uint) (*Forecast, error)
	ListByCity(ctx context.Context, cityID uint) ([]Forecast, error)
	ListInRange(ctx context.Context, r query.TimeRange, cityID *uint) ([]Forecast, error)
	CountByCityAndType(ctx context.Context, r query.TimeRange) ([]report.TypeCount, error)
	Occurrences(ctx context.Context, t weather.Type, r query.TimeRange) ([]report.Occurrence, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) Create(ctx context.Context, forecast *Forecast) error {
	return dberrors.Translate(r.db.WithContext(ctx).Create(forecast).Error, entityName)
}

func (r *ForecastSQLRepository) List(ctx context.Context) ([]Forecast, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("forecasts.id ASC")
	})
}

func (r *ForecastSQLRepository) Get(ctx context.Context, id uint) (*Forecast, error) {
	var forecast Forecast

	err := r.db.WithContext(ctx).Preload("City").Scopes(query.ByID(id)).Take(&forecast).Error
	if err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	return &forecast, nil
}

func (r *ForecastSQLRepository) Update(ctx context.Context, id uint, changes Changes) (*Forecast, error) {
	forecast, err := r.take(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Empty() {
		return forecast, nil
	}

	if err := r.db.WithContext(ctx).Model(forecast).Updates(changes.columns()).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	changes.apply(forecast)

	return forecast, nil
}

func (r *ForecastSQLRepository) Delete(ctx context.Context, id uint) (*Forecast, error) {
	forecast, err := r.take(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(forecast).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	return forecast, nil
}

func (r *ForecastSQLRepository) ListByCity(ctx context.Context, cityID uint) ([]Forecast, error) {
	return r.find(ctx, query.ForCity(&cityID), query.OrderedByTime)
}

func (r *ForecastSQLRepository) ListInRange(ctx context.Context, tr query.TimeRange, cityID *uint) ([]Forecast, error) {
	return r.find(ctx, query.Within(tr), query.ForCity(cityID), query.OrderedByTime)
}

func (r *ForecastSQLRepository) CountByCityAndType(ctx context.Context, tr query.TimeRange) ([]report.TypeCount, error) {
	counts := make([]report.TypeCount, 0)

	err := r.db.WithContext(ctx).
		Model(&Forecast{}).
		Select("forecasts.city_id, forecasts.type, COUNT(*) AS count").
		Scopes(query.Within(tr)).
		Group("forecasts.city_id, forecasts.type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *ForecastSQLRepository) Occurrences(ctx context.Context, t weather.Type, tr query.TimeRange) ([]report.Occurrence, error) {
	occurrences := make([]report.Occurrence, 0)

	err := r.db.WithContext(ctx).
		Model(&Forecast{}).
		Select("forecasts.city_id, cities.name AS city_name, forecasts.time").
		Joins("LEFT JOIN cities ON cities.id = forecasts.city_id").
		Scopes(query.OfType(t), query.Within(tr)).
		Scan(&occurrences).Error
	if err != nil {
		return nil, err
	}
	return occurrences, nil
}

func (r *ForecastSQLRepository) take(ctx context.Context, id uint) (*Forecast, error) {
	var forecast Forecast

	if err := r.db.WithContext(ctx).Scopes(query.ByID(id)).Take(&forecast).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	return &forecast, nil
}

func (r *ForecastSQLRepository) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]Forecast, error) {
	forecasts := make([]Forecast, 0)

	if err := r.db.WithContext(ctx).Preload("City").Scopes(scopes...).Find(&forecasts).Error; err != nil {
		return nil, err
	}
	return forecasts, nil
}
