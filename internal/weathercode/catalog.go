package weathercode

// Entry is the human readable form of a WMO weather code.
type Entry struct {
	Description string
	Icon        string
}

// Unknown is returned for codes that have no entry in the catalog.
var Unknown = Entry{Description: "Unknown", Icon: "❓"}

var catalog = map[int]Entry{
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

// Lookup never fails: codes missing from the catalog map to Unknown.
func Lookup(code int) Entry {
	if entry, ok := catalog[code]; ok {
		return entry
	}
	return Unknown
}

// Codes returns every code the catalog knows about, in no particular order.
func Codes() []int {
	codes := make([]int, 0, len(catalog))
	for code := range catalog {
		codes = append(codes, code)
	}
	return codes
}
