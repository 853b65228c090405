package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

type Location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

type GeocodingService interface {
	Resolve(ctx context.Context, city string) (Location, error)
}

type GeocodingClient struct {
	*apiClient
}

func NewGeocodingClient(baseURL string, httpClient *http.Client, breaker BreakerSettings) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	return &GeocodingClient{apiClient: newAPIClient("geocoding", baseURL, httpClient, breaker)}
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Resolve returns the first match only; ambiguous names are not disambiguated.
func (s *GeocodingClient) Resolve(ctx context.Context, city string) (Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Location{}, &NotFoundError{Query: city}
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return Location{}, &ProviderError{Provider: s.name, Err: fmt.Errorf("failed to parse base URL: %w", err)}
	}

	q := u.Query()
	q.Set("name", city)
	q.Set("count", "1")
	u.RawQuery = q.Encode()

	var apiResp geocodingResponse
	if err := s.getJSON(ctx, u.String(), &apiResp); err != nil {
		return Location{}, err
	}

	if len(apiResp.Results) == 0 {
		return Location{}, &NotFoundError{Query: city}
	}

	first := apiResp.Results[0]
	if first.Latitude == nil || first.Longitude == nil || first.Name == "" {
		return Location{}, &ProviderError{Provider: s.name, Err: errors.New("result is missing name or coordinates")}
	}

	return Location{
		Name:      first.Name,
		Country:   first.Country,
		Latitude:  *first.Latitude,
		Longitude: *first.Longitude,
	}, nil
}
