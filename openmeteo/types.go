package openmeteo

// ForecastPayload models the forecast API response; only the current block
// is requested.
type ForecastPayload struct {
	Current CurrentBlock `json:"current"`
}

// CurrentBlock carries the current-conditions fields. Pointers distinguish
// values the provider omitted from real zeroes.
type CurrentBlock struct {
	Temperature         *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
	WindDirection       *float64 `json:"wind_direction_10m"`
	WeatherCode         *int     `json:"weather_code"`
}

// AirQualityPayload models the air-quality API response. Time and USAQI are
// parallel arrays; USAQI entries may be null.
type AirQualityPayload struct {
	Hourly struct {
		Time  []string   `json:"time"`
		USAQI []*float64 `json:"us_aqi"`
	} `json:"hourly"`
}
