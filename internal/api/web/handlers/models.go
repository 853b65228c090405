package handlers

import "ulascansenturk/city-weather/internal/service"

type pageData struct {
	City    string
	Weather *service.WeatherView
	Error   string
	History []string
}

func newPageData(city string, page service.Page) pageData {
	return pageData{
		City:    city,
		Weather: page.Weather,
		Error:   page.Error,
		History: page.History,
	}
}
