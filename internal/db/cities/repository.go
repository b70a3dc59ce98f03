package cities

import (
	"context"

	"gorm.io/gorm"

	"ulascansenturk/forecast-api/internal/db/dberrors"
	"ulascansenturk/forecast-api/internal/query"
)

const entityName = "City"

type Repository interface {
	Create(ctx context.Context, name string) (*City, error)
	List(ctx context.Context) ([]City, error)
	Get(ctx context.Context, id uint) (*City, error)
	Update(ctx context.Context, id uint, name string) (*City, error)
	Delete(ctx context.Context, id uint) (*City, error)
	Names(ctx context.Context) (map[uint]string, error)
}

type CitySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &CitySQLRepository{db: db}
}

func (r *CitySQLRepository) Create(ctx context.Context, name string) (*City, error) {
	city := City{Name: name}

	if err := r.db.WithContext(ctx).Create(&city).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	return &city, nil
}

func (r *CitySQLRepository) List(ctx context.Context) ([]City, error) {
	cities := make([]City, 0)

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CitySQLRepository) Get(ctx context.Context, id uint) (*City, error) {
	var city City

	if err := r.db.WithContext(ctx).Scopes(query.ByID(id)).Take(&city).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	return &city, nil
}

func (r *CitySQLRepository) Update(ctx context.Context, id uint, name string) (*City, error) {
	city, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(city).Update("name", name).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	city.Name = name

	return city, nil
}

// Delete removes the city; its forecasts go with it through the foreign key
// cascade.
func (r *CitySQLRepository) Delete(ctx context.Context, id uint) (*City, error) {
	city, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(city).Error; err != nil {
		return nil, dberrors.Translate(err, entityName)
	}
	return city, nil
}

func (r *CitySQLRepository) Names(ctx context.Context) (map[uint]string, error) {
	cities, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(cities))
	for _, c := range cities {
		names[c.ID] = c.Name
	}
	return names, nil
}
