package units

import "strconv"

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FormatFahrenheit renders the converted temperature with one decimal place.
func FormatFahrenheit(c float64) string {
	return strconv.FormatFloat(CelsiusToFahrenheit(c), 'f', 1, 64)
}

// UTCOffsetHours approximates the local UTC offset from longitude alone.
// It is not a timezone lookup and is off near zone boundaries.
func UTCOffsetHours(longitude float64) float64 {
	return longitude / 15
}
