package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// CurrentWeather is the current_weather block of a forecast response.
type CurrentWeather struct {
	Temperature   float64
	WeatherCode   int
	WindSpeed     float64
	WindDirection float64
	IsDay         bool
	Time          string
}

type WeatherAPIService interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentWeather, error)
}

type WeatherClient struct {
	*apiClient
}

func NewWeatherClient(baseURL string, httpClient *http.Client, breaker BreakerSettings) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &WeatherClient{apiClient: newAPIClient("weather", baseURL, httpClient, breaker)}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature   *float64 `json:"temperature"`
		WeatherCode   *int     `json:"weathercode"`
		WindSpeed     *float64 `json:"windspeed"`
		WindDirection float64  `json:"winddirection"`
		IsDay         int      `json:"is_day"`
		Time          string   `json:"time"`
	} `json:"current_weather"`
}

func (s *WeatherClient) CurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentWeather, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return CurrentWeather{}, &ProviderError{Provider: s.name, Err: fmt.Errorf("failed to parse base URL: %w", err)}
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	u.RawQuery = q.Encode()

	var apiResp forecastResponse
	if err := s.getJSON(ctx, u.String(), &apiResp); err != nil {
		return CurrentWeather{}, err
	}

	current := apiResp.CurrentWeather
	if current == nil {
		return CurrentWeather{}, &ProviderError{Provider: s.name, Err: errors.New("response has no current_weather")}
	}
	if current.Temperature == nil || current.WeatherCode == nil || current.WindSpeed == nil {
		return CurrentWeather{}, &ProviderError{Provider: s.name, Err: errors.New("current_weather is missing temperature, weathercode or windspeed")}
	}

	return CurrentWeather{
		Temperature:   *current.Temperature,
		WeatherCode:   *current.WeatherCode,
		WindSpeed:     *current.WindSpeed,
		WindDirection: current.WindDirection,
		IsDay:         current.IsDay == 1,
		Time:          current.Time,
	}, nil
}
