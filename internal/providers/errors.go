package providers

import "fmt"

// NotFoundError means the geocoder had no match for the query.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return "City not found"
}

// ProviderError covers transport failures, non-2xx answers, malformed bodies
// and open circuit breakers for either upstream service.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status code: %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
