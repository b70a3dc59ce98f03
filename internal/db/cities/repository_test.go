package cities_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ulascansenturk/forecast-api/internal/apperrors"
	"ulascansenturk/forecast-api/internal/db/cities"
)

const selectCityByID = `SELECT \* FROM "cities" WHERE "cities"."id" = \$1 LIMIT \$2`

type CityRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo cities.Repository
	ctx  context.Context
}

func (s *CityRepositorySuite) SetupTest() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	s.Require().NoError(err)

	s.repo = cities.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *CityRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *CityRepositorySuite) expectCity(id uint, name string) {
	s.mock.ExpectQuery(selectCityByID).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name))
}

func (s *CityRepositorySuite) expectNoCity(id uint) {
	s.mock.ExpectQuery(selectCityByID).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
}

func (s *CityRepositorySuite) TestCreate() {
	s.Run("Successfully creates a city", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "cities" \("name"\) VALUES \(\$1\) RETURNING "id"`).
			WithArgs("Split").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		city, err := s.repo.Create(s.ctx, "Split")

		s.Require().NoError(err)
		s.Require().Equal(uint(1), city.ID)
		s.Require().Equal("Split", city.Name)
	})

	s.Run("Returns conflict on duplicate name", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "cities"`).
			WithArgs("Split").
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
		s.mock.ExpectRollback()

		city, err := s.repo.Create(s.ctx, "Split")

		s.Require().Error(err)
		s.Require().Nil(city)
		s.Require().True(apperrors.Is(err, apperrors.KindConflict))
	})
}

func (s *CityRepositorySuite) TestList() {
	s.mock.ExpectQuery(`SELECT \* FROM "cities" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Split").
			AddRow(2, "Zagreb"))

	result, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.Require().Equal([]cities.City{{ID: 1, Name: "Split"}, {ID: 2, Name: "Zagreb"}}, result)
}

func (s *CityRepositorySuite) TestListEmpty() {
	s.mock.ExpectQuery(`SELECT \* FROM "cities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	result, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Require().Empty(result)
}

func (s *CityRepositorySuite) TestGet() {
	s.Run("Successfully retrieves a city", func() {
		s.expectCity(3, "Rijeka")

		city, err := s.repo.Get(s.ctx, 3)

		s.Require().NoError(err)
		s.Require().Equal(&cities.City{ID: 3, Name: "Rijeka"}, city)
	})

	s.Run("Returns not found when city is absent", func() {
		s.expectNoCity(99)

		city, err := s.repo.Get(s.ctx, 99)

		s.Require().Error(err)
		s.Require().Nil(city)
		s.Require().True(apperrors.Is(err, apperrors.KindNotFound))
		s.Require().Equal("City not found", apperrors.Message(err))
	})

	s.Run("Returns error when database query fails", func() {
		s.mock.ExpectQuery(selectCityByID).
			WithArgs(4, 1).
			WillReturnError(errors.New("connection error"))

		city, err := s.repo.Get(s.ctx, 4)

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(city)
	})
}

func (s *CityRepositorySuite) TestUpdate() {
	s.Run("Successfully renames a city", func() {
		s.expectCity(1, "Split")
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`UPDATE "cities" SET "name"=\$1 WHERE .*"id" = \$2`).
			WithArgs("Zadar", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectCommit()

		city, err := s.repo.Update(s.ctx, 1, "Zadar")

		s.Require().NoError(err)
		s.Require().Equal(&cities.City{ID: 1, Name: "Zadar"}, city)
	})

	s.Run("Returns not found without updating", func() {
		s.expectNoCity(7)

		city, err := s.repo.Update(s.ctx, 7, "Pula")

		s.Require().Nil(city)
		s.Require().True(apperrors.Is(err, apperrors.KindNotFound))
	})
}

func (s *CityRepositorySuite) TestDelete() {
	s.Run("Successfully deletes a city", func() {
		s.expectCity(2, "Zagreb")
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`DELETE FROM "cities" WHERE .*"id" = \$1`).
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectCommit()

		city, err := s.repo.Delete(s.ctx, 2)

		s.Require().NoError(err)
		s.Require().Equal(&cities.City{ID: 2, Name: "Zagreb"}, city)
	})

	s.Run("Returns not found for unknown city", func() {
		s.expectNoCity(8)

		city, err := s.repo.Delete(s.ctx, 8)

		s.Require().Nil(city)
		s.Require().True(apperrors.Is(err, apperrors.KindNotFound))
	})
}

func (s *CityRepositorySuite) TestNames() {
	s.mock.ExpectQuery(`SELECT \* FROM "cities" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Split").
			AddRow(5, "Dubrovnik"))

	names, err := s.repo.Names(s.ctx)

	s.Require().NoError(err)
	s.Require().Equal(map[uint]string{1: "Split", 5: "Dubrovnik"}, names)
}

func TestCityRepositorySuite(t *testing.T) {
	suite.Run(t, new(CityRepositorySuite))
}
