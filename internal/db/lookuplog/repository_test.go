package lookuplog_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/city-weather/internal/db/lookuplog"
)

type LookupRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo lookuplog.Repository
}

func (s *LookupRepositorySuite) SetupSuite() {
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

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = lookuplog.NewRepository(s.DB)
}

func (s *LookupRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *LookupRepositorySuite) TestLogLookup() {
	s.Run("Successfully logs a lookup", func() {
		lookup := lookuplog.CityLookup{
			Query:        "london",
			Name:         "London",
			Country:      "UK",
			Latitude:     51.5,
			Longitude:    -0.1,
			TemperatureC: 10,
			WeatherCode:  3,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "city_lookups"`).
			WithArgs(
				lookup.Query,
				lookup.Name,
				lookup.Country,
				lookup.Latitude,
				lookup.Longitude,
				lookup.TemperatureC,
				lookup.WeatherCode,
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogLookup(context.Background(), lookup)

		s.Require().NoError(err)
	})

	s.Run("Returns error when database operation fails", func() {
		lookup := lookuplog.CityLookup{
			Query:        "Paris",
			Name:         "Paris",
			Country:      "France",
			Latitude:     48.85,
			Longitude:    2.35,
			TemperatureC: 18,
			WeatherCode:  61,
		}
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "city_lookups"`).
			WithArgs(
				lookup.Query,
				lookup.Name,
				lookup.Country,
				lookup.Latitude,
				lookup.Longitude,
				lookup.TemperatureC,
				lookup.WeatherCode,
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogLookup(context.Background(), lookup)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func TestLookupRepositorySuite(t *testing.T) {
	suite.Run(t, new(LookupRepositorySuite))
}
