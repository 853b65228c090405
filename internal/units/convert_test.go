package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ulascansenturk/city-weather/internal/units"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.Equal(t, 32.0, units.CelsiusToFahrenheit(0))
	assert.Equal(t, 212.0, units.CelsiusToFahrenheit(100))
	assert.Equal(t, -40.0, units.CelsiusToFahrenheit(-40))
	assert.InDelta(t, -1.1*9/5+32, units.CelsiusToFahrenheit(-1.1), 1e-9)
}

func TestFormatFahrenheit(t *testing.T) {
	assert.Equal(t, "32.0", units.FormatFahrenheit(0))
	assert.Equal(t, "212.0", units.FormatFahrenheit(100))
	assert.Equal(t, "50.0", units.FormatFahrenheit(10))
	assert.Equal(t, "30.0", units.FormatFahrenheit(-1.1))
	assert.Equal(t, "72.5", units.FormatFahrenheit(22.5))
}

func TestUTCOffsetHours(t *testing.T) {
	assert.Equal(t, 0.0, units.UTCOffsetHours(0))
	assert.Equal(t, 1.0, units.UTCOffsetHours(15))
	assert.Equal(t, -5.0, units.UTCOffsetHours(-75))
	assert.InDelta(t, -0.00667, units.UTCOffsetHours(-0.1), 1e-5)
}
