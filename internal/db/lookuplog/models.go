package lookuplog

import (
	"time"
)

type CityLookup struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Query        string    `json:"query" gorm:"column:query"`
	Name         string    `json:"name" gorm:"index:idx_name;index:idx_name_created_at"`
	Country      string    `json:"country"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	TemperatureC float64   `json:"temperature_c" gorm:"column:temperature_c"`
	WeatherCode  int       `json:"weather_code" gorm:"column:weather_code"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_name_created_at"`
}

func (CityLookup) TableName() string {
	return "city_lookups"
}
