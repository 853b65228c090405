package weathercode_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather/internal/weathercode"
)

type CatalogTestSuite struct {
	suite.Suite
}

func (s *CatalogTestSuite) TestKnownCodes() {
	cases := map[int]weathercode.Entry{
		0:  {Description: "Clear sky", Icon: "☀️"},
		1:  {Description: "Mainly clear", Icon: "🌤️"},
		2:  {Description: "Partly cloudy", Icon: "⛅"},
		3:  {Description: "Overcast", Icon: "☁️"},
		45: {Description: "Fog", Icon: "🌫️"},
		48: {Description: "Depositing rime fog", Icon: "🌫️"},
		51: {Description: "Drizzle: Light", Icon: "🌦️"},
		53: {Description: "Drizzle: Moderate", Icon: "🌦️"},
		55: {Description: "Drizzle: Dense", Icon: "🌧️"},
		56: {Description: "Freezing Drizzle: Light", Icon: "🌧️"},
		57: {Description: "Freezing Drizzle: Dense", Icon: "🌧️"},
		61: {Description: "Rain: Slight", Icon: "🌧️"},
		63: {Description: "Rain: Moderate", Icon: "🌧️"},
		65: {Description: "Rain: Heavy", Icon: "🌧️"},
		66: {Description: "Freezing Rain: Light", Icon: "🌨️"},
		67: {Description: "Freezing Rain: Heavy", Icon: "🌨️"},
		71: {Description: "Snow: Slight", Icon: "❄️"},
		73: {Description: "Snow: Moderate", Icon: "❄️"},
		75: {Description: "Snow: Heavy", Icon: "❄️"},
		77: {Description: "Snow grains", Icon: "❄️"},
		80: {Description: "Rain showers: Slight", Icon: "🌧️"},
		81: {Description: "Rain showers: Moderate", Icon: "🌧️"},
		82: {Description: "Rain showers: Violent", Icon: "🌧️"},
		85: {Description: "Snow showers: Slight", Icon: "❄️"},
		86: {Description: "Snow showers: Heavy", Icon: "❄️"},
		95: {Description: "Thunderstorm: Slight or moderate", Icon: "⛈️"},
		96: {Description: "Thunderstorm with slight hail", Icon: "⛈️"},
		99: {Description: "Thunderstorm with heavy hail", Icon: "⛈️"},
	}

	s.Len(weathercode.Codes(), len(cases))
	for code, want := range cases {
		s.Equal(want, weathercode.Lookup(code), "code %d", code)
	}
}

func (s *CatalogTestSuite) TestUnmappedCodesFallBackToUnknown() {
	known := make(map[int]bool)
	for _, code := range weathercode.Codes() {
		known[code] = true
	}

	for code := -5; code <= 120; code++ {
		if known[code] {
			continue
		}
		s.Equal(weathercode.Entry{Description: "Unknown", Icon: "❓"}, weathercode.Lookup(code), "code %d", code)
	}
}

func (s *CatalogTestSuite) TestDescriptionsAreUniquePerCode() {
	seen := make(map[weathercode.Entry]int)
	for _, code := range weathercode.Codes() {
		entry := weathercode.Lookup(code)
		if other, dup := seen[entry]; dup {
			s.Failf("duplicate entry", "codes %d and %d share %+v", code, other, entry)
		}
		seen[entry] = code
	}
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
