package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

// ServeHTTP serves the single page: GET renders history, POST runs a search.
func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	logger := log.With().
		Str("request_id", requestID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Logger()
	r = r.WithContext(logger.WithContext(r.Context()))

	if r.URL.Path != "/" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.Home(w, r)
	case http.MethodPost:
		h.Search(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *WeatherHandler) Home(w http.ResponseWriter, r *http.Request) {
	page := h.weatherService.Home(r.Context())

	respondWithPage(w, log.Ctx(r.Context()), newPageData("", page))
}

func (h *WeatherHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("failed to parse form")
		respondWithError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	city := r.PostFormValue("city")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	page := h.weatherService.Search(ctx, city)

	respondWithPage(w, log.Ctx(r.Context()), newPageData(city, page))
}
