package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"ulascansenturk/forecast-api/internal/api/v1/handlers"
	"ulascansenturk/forecast-api/internal/apperrors"
	"ulascansenturk/forecast-api/internal/db/cities"
	"ulascansenturk/forecast-api/internal/mocks"
	"ulascansenturk/forecast-api/internal/report"
	"ulascansenturk/forecast-api/internal/weather"
)

type CityHandlerTestSuite struct {
	suite.Suite
	mockCityService     *mocks.MockCityService
	mockForecastService *mocks.MockForecastService
	handler             *handlers.Handler
}

func (s *CityHandlerTestSuite) SetupTest() {
	s.mockCityService = mocks.NewMockCityService(s.T())
	s.mockForecastService = mocks.NewMockForecastService(s.T())
	s.handler = handlers.NewHandler(s.mockCityService, s.mockForecastService, 5*time.Second)
}

func (s *CityHandlerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	return recorder
}

func (s *CityHandlerTestSuite) decodeError(recorder *httptest.ResponseRecorder) handlers.Error {
	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Require().Len(response.Errors, 1)
	return response.Errors[0]
}

func (s *CityHandlerTestSuite) TestCreateCity() {
	s.mockCityService.On("Create", mock.Anything, "Split").Return(&cities.City{ID: 1, Name: "Split"}, nil)

	recorder := s.serve(http.MethodPost, "/cities", `{"name":"Split"}`)

	s.Equal(http.StatusCreated, recorder.Code)

	var city cities.City
	s.NoError(json.NewDecoder(recorder.Body).Decode(&city))
	s.Equal(cities.City{ID: 1, Name: "Split"}, city)
}

func (s *CityHandlerTestSuite) TestCreateCityMissingName() {
	recorder := s.serve(http.MethodPost, "/cities", `{}`)

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Equal("VALIDATION_ERROR", apiErr.Code)
	s.Equal("City name is required", apiErr.Detail)
	s.mockCityService.AssertNotCalled(s.T(), "Create")
}

func (s *CityHandlerTestSuite) TestCreateCityMalformedBody() {
	recorder := s.serve(http.MethodPost, "/cities", `{"name":`)

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
	s.Equal("Invalid request body", s.decodeError(recorder).Detail)
}

func (s *CityHandlerTestSuite) TestCreateCityConflict() {
	s.mockCityService.On("Create", mock.Anything, "Split").Return(nil, apperrors.Conflict("Record already exists"))

	recorder := s.serve(http.MethodPost, "/cities", `{"name":"Split"}`)

	s.Equal(http.StatusConflict, recorder.Code)
	s.Equal("CONFLICT", s.decodeError(recorder).Code)
}

func (s *CityHandlerTestSuite) TestListCities() {
	s.mockCityService.On("List", mock.Anything).Return([]cities.City{{ID: 1, Name: "Split"}, {ID: 2, Name: "Zagreb"}}, nil)

	recorder := s.serve(http.MethodGet, "/cities", "")

	s.Equal(http.StatusOK, recorder.Code)

	var result []cities.City
	s.NoError(json.NewDecoder(recorder.Body).Decode(&result))
	s.Len(result, 2)
}

func (s *CityHandlerTestSuite) TestGetCity() {
	s.mockCityService.On("Get", mock.Anything, uint(3)).Return(&cities.City{ID: 3, Name: "Rijeka"}, nil)

	recorder := s.serve(http.MethodGet, "/cities/3", "")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"id":3,"name":"Rijeka"}`, recorder.Body.String())
}

func (s *CityHandlerTestSuite) TestGetCityNotFound() {
	s.mockCityService.On("Get", mock.Anything, uint(9999)).Return(nil, apperrors.NotFound("City not found"))

	recorder := s.serve(http.MethodGet, "/cities/9999", "")

	s.Equal(http.StatusNotFound, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Equal("NOT_FOUND", apiErr.Code)
	s.Equal("City not found", apiErr.Detail)
}

func (s *CityHandlerTestSuite) TestGetCityInvalidID() {
	recorder := s.serve(http.MethodGet, "/cities/abc", "")

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
	s.Equal("id must be a number", s.decodeError(recorder).Detail)
	s.mockCityService.AssertNotCalled(s.T(), "Get")
}

func (s *CityHandlerTestSuite) TestUpdateCity() {
	s.mockCityService.On("Update", mock.Anything, uint(1), "Zadar").Return(&cities.City{ID: 1, Name: "Zadar"}, nil)

	recorder := s.serve(http.MethodPut, "/cities/1", `{"name":"Zadar"}`)

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"id":1,"name":"Zadar"}`, recorder.Body.String())
}

func (s *CityHandlerTestSuite) TestDeleteCity() {
	s.mockCityService.On("Delete", mock.Anything, uint(4)).Return(&cities.City{ID: 4, Name: "Osijek"}, nil)

	recorder := s.serve(http.MethodDelete, "/cities/4", "")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"id":4,"name":"Osijek"}`, recorder.Body.String())
}

func (s *CityHandlerTestSuite) TestCityStats() {
	s.mockCityService.On("Stats", mock.Anything, "2026").Return([]report.CityStats{
		{CityID: 1, CityName: "Split", Stats: map[weather.Type]int{weather.Sunny: 2, weather.Rainy: 1}},
	}, nil)

	recorder := s.serve(http.MethodGet, "/cities/stats?year=2026", "")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`[{"cityId":1,"cityName":"Split","stats":{"SUNNY":2,"RAINY":1}}]`, recorder.Body.String())
	s.mockCityService.AssertNotCalled(s.T(), "Get")
}

func (s *CityHandlerTestSuite) TestCityStatsEmpty() {
	s.mockCityService.On("Stats", mock.Anything, "").Return([]report.CityStats{}, nil)

	recorder := s.serve(http.MethodGet, "/cities/stats", "")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`[]`, recorder.Body.String())
}

func (s *CityHandlerTestSuite) TestInternalErrorIsHidden() {
	s.mockCityService.On("List", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	recorder := s.serve(http.MethodGet, "/cities", "")

	s.Equal(http.StatusInternalServerError, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Equal("INTERNAL_ERROR", apiErr.Code)
	s.Equal("Internal server error", apiErr.Detail)
}

func (s *CityHandlerTestSuite) TestUnknownRoute() {
	recorder := s.serve(http.MethodGet, "/countries", "")

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("NOT_FOUND", s.decodeError(recorder).Code)
}

func (s *CityHandlerTestSuite) TestUnsupportedMethod() {
	recorder := s.serve(http.MethodPatch, "/cities/1", `{"name":"Split"}`)

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.Equal("GET, PUT, DELETE", recorder.Header().Get("Allow"))
	s.Equal("METHOD_NOT_ALLOWED", s.decodeError(recorder).Code)
	s.mockCityService.AssertNotCalled(s.T(), "Update")
}

func (s *CityHandlerTestSuite) TestUnsupportedMethodOnCollection() {
	recorder := s.serve(http.MethodDelete, "/cities", "")

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.Equal("GET, POST", recorder.Header().Get("Allow"))
}

func (s *CityHandlerTestSuite) TestHealth() {
	recorder := s.serve(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"status":"ok"}`, recorder.Body.String())
}

func TestCityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CityHandlerTestSuite))
}
