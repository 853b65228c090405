package service

import (
	"errors"
	"fmt"

	"ulascansenturk/city-weather/internal/providers"
)

// InputError rejects a submission before any provider is called. Reason is
// the failed validation tag.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Reason == "max" {
		return fmt.Sprintf("City name must be at most %d characters", MaxCityLength)
	}
	return "Please enter a city name"
}

// HistoryError means the search succeeded but the history could not be saved.
type HistoryError struct {
	Err error
}

func (e *HistoryError) Error() string {
	return "failed to save search history: " + e.Err.Error()
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}

// UserMessage turns any orchestration error into the text shown on the page.
func UserMessage(err error) string {
	var inputErr *InputError
	var notFound *providers.NotFoundError
	var providerErr *providers.ProviderError
	var historyErr *HistoryError

	switch {
	case errors.As(err, &inputErr):
		return inputErr.Error()
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &providerErr):
		return "Could not reach the " + providerErr.Provider + " service"
	case errors.As(err, &historyErr):
		return "Could not save search history"
	default:
		return "Something went wrong"
	}
}
