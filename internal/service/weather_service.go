package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/history"
	"ulascansenturk/city-weather/internal/inmemorycache"
	"ulascansenturk/city-weather/internal/providers"
	"ulascansenturk/city-weather/internal/units"
	"ulascansenturk/city-weather/internal/weathercode"
)

type State string

const (
	StateIdle            State = "idle"
	StateResolving       State = "resolving"
	StateFetchingWeather State = "fetching_weather"
	StateSuccess         State = "success"
	StateFailed          State = "failed"
)

// WeatherView is everything the page shows about one city. It lives for a
// single request and is never persisted.
type WeatherView struct {
	Name          string
	Country       string
	TempC         float64
	TempF         string
	WindSpeed     float64
	WindDirection float64
	WeatherCode   int
	IsDay         bool
	Time          string
	Description   string
	Icon          string
	UTCOffset     float64
}

type Page struct {
	State   State
	Weather *WeatherView
	Error   string
	History []string
}

type WeatherService interface {
	Home(ctx context.Context) Page
	Search(ctx context.Context, city string) Page
}

type Options struct {
	GeocodeCache    inmemorycache.Cache
	GeocodeCacheTTL time.Duration
	LookupLog       lookuplog.Repository
}

type weatherService struct {
	geocoder  providers.GeocodingService
	weather   providers.WeatherAPIService
	history   history.Store
	cache     inmemorycache.Cache
	cacheTTL  time.Duration
	lookupLog lookuplog.Repository
	validate  *validator.Validate
}

func NewWeatherService(
	geocoder providers.GeocodingService,
	weather providers.WeatherAPIService,
	historyStore history.Store,
	opts Options,
) WeatherService {
	s := &weatherService{
		geocoder:  geocoder,
		weather:   weather,
		history:   historyStore,
		lookupLog: opts.LookupLog,
		validate:  validator.New(),
	}
	if opts.GeocodeCache != nil && opts.GeocodeCacheTTL > 0 {
		s.cache = opts.GeocodeCache
		s.cacheTTL = opts.GeocodeCacheTTL
	}
	return s
}

// MaxCityLength bounds the query forwarded to the geocoder, in characters.
const MaxCityLength = 100

type searchRequest struct {
	City string `validate:"required,max=100"`
}

func (s *weatherService) Home(ctx context.Context) Page {
	return Page{
		State:   StateIdle,
		History: s.history.Load(),
	}
}

func (s *weatherService) Search(ctx context.Context, city string) Page {
	city = strings.TrimSpace(city)
	previous := s.history.Load()

	fail := func(step string, err error) Page {
		log.Ctx(ctx).Error().Err(err).Str("city", city).Str("step", step).Msg("weather lookup failed")
		return Page{
			State:   StateFailed,
			Error:   UserMessage(err),
			History: previous,
		}
	}

	if err := s.validate.Struct(searchRequest{City: city}); err != nil {
		return fail("validate", newInputError(err))
	}

	location, err := s.resolve(ctx, city)
	if err != nil {
		return fail(string(StateResolving), err)
	}

	current, err := s.weather.CurrentWeather(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return fail(string(StateFetchingWeather), err)
	}

	view := buildView(location, current)

	if err := s.history.Save(history.RecordVisit(previous, location.Name)); err != nil {
		return fail("save_history", &HistoryError{Err: err})
	}

	s.logLookup(ctx, city, location, current)

	log.Ctx(ctx).Info().
		Str("city", city).
		Str("name", location.Name).
		Float64("temperature", current.Temperature).
		Int("weathercode", current.WeatherCode).
		Msg("weather lookup succeeded")

	return Page{
		State:   StateSuccess,
		Weather: &view,
		History: s.history.Load(),
	}
}

func newInputError(err error) *InputError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return &InputError{Field: "city", Reason: validationErrs[0].Tag()}
	}
	return &InputError{Field: "city", Reason: err.Error()}
}

func (s *weatherService) resolve(ctx context.Context, city string) (providers.Location, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(city)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("city", city).Msg("geocode cache read failed")
		} else if ok {
			return providers.Location{
				Name:      cached.Name,
				Country:   cached.Country,
				Latitude:  cached.Latitude,
				Longitude: cached.Longitude,
			}, nil
		}
	}

	location, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		return providers.Location{}, err
	}

	if s.cache != nil {
		err := s.cache.Set(city, &inmemorycache.CachedLocation{
			Name:      location.Name,
			Country:   location.Country,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		}, s.cacheTTL)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("city", city).Msg("geocode cache write failed")
		}
	}

	return location, nil
}

func (s *weatherService) logLookup(ctx context.Context, city string, location providers.Location, current providers.CurrentWeather) {
	if s.lookupLog == nil {
		return
	}

	err := s.lookupLog.LogLookup(ctx, lookuplog.CityLookup{
		Query:        city,
		Name:         location.Name,
		Country:      location.Country,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		TemperatureC: current.Temperature,
		WeatherCode:  current.WeatherCode,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("city", city).Msg("failed to log city lookup")
	}
}

func buildView(location providers.Location, current providers.CurrentWeather) WeatherView {
	entry := weathercode.Lookup(current.WeatherCode)

	return WeatherView{
		Name:          location.Name,
		Country:       location.Country,
		TempC:         current.Temperature,
		TempF:         units.FormatFahrenheit(current.Temperature),
		WindSpeed:     current.WindSpeed,
		WindDirection: current.WindDirection,
		WeatherCode:   current.WeatherCode,
		IsDay:         current.IsDay,
		Time:          current.Time,
		Description:   entry.Description,
		Icon:          entry.Icon,
		UTCOffset:     units.UTCOffsetHours(location.Longitude),
	}
}
