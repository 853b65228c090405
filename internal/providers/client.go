package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// apiClient is the shared GET-and-decode path of both upstream services.
type apiClient struct {
	name       string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func newAPIClient(name, baseURL string, httpClient *http.Client, settings BreakerSettings) *apiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		// A caller walking away says nothing about the provider's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("provider", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &apiClient{
		name:       name,
		baseURL:    baseURL,
		httpClient: httpClient,
		breaker:    breaker,
	}
}

func (c *apiClient) getJSON(ctx context.Context, url string, out interface{}) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, &ProviderError{Provider: c.name, Err: err}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &ProviderError{Provider: c.name, Err: err}
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, &ProviderError{
				Provider:   c.name,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("unexpected response: %s", string(body)),
			}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, &ProviderError{Provider: c.name, Err: fmt.Errorf("malformed JSON: %w", err)}
		}

		return nil, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &ProviderError{Provider: c.name, Err: err}
	}

	return err
}

func (c *apiClient) GetHTTPClient() *http.Client {
	return c.httpClient
}
