// Package weather proxies Open-Meteo current conditions and air quality into
// the shapes the frontend renders, with the same degrade-on-upstream-failure
// policy as the river snapshot.
package weather

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/observability"
	"github.com/rivervalleyreport/backend/openmeteo"
)

// ErrInvalidCoordinates rejects requests whose lat/lon are not finite
// numbers, before any upstream call is made.
var ErrInvalidCoordinates = errors.New("lat and lon must be finite numbers")

// AirQualityReport is the AQI response unit.
type AirQualityReport struct {
	AQI      *float64 `json:"aqi"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
}

// ConditionsReport is the current-weather response unit. Omitted upstream
// fields stay null rather than zeroed.
type ConditionsReport struct {
	TempF         *float64 `json:"temp_f"`
	ApparentTempF *float64 `json:"apparent_temp_f"`
	WindSpeedMPH  *float64 `json:"wind_speed_mph"`
	WindDirection *float64 `json:"wind_direction"`
	WeatherCode   *int     `json:"weather_code"`
}

// MeteoClient fetches raw payloads from the weather provider.
type MeteoClient interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (openmeteo.ForecastPayload, error)
	AirQuality(ctx context.Context, lat, lon float64) (openmeteo.AirQualityPayload, error)
}

// Service shapes provider payloads into frontend reports.
type Service struct {
	client  MeteoClient
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewService wires a weather service.
func NewService(client MeteoClient, logger *zap.Logger, metrics *observability.Metrics) *Service {
	return &Service{client: client, logger: logger, metrics: metrics}
}

// AirQuality returns the latest AQI reading with its severity category. The
// provider's hourly series is scanned newest to oldest, skipping the
// placeholder nulls it emits for hours not yet observed. Upstream failure
// degrades to an Unknown report with no error.
func (s *Service) AirQuality(ctx context.Context, lat, lon float64) (AirQualityReport, error) {
	if err := validateCoords(lat, lon); err != nil {
		return AirQualityReport{}, err
	}

	payload, err := s.client.AirQuality(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("air quality feed unavailable, serving unknown",
			zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		s.metrics.DegradedResponses.WithLabelValues("aqi").Inc()
		return unknownAirQuality(), nil
	}

	latest := latestAQI(payload)
	category, color := Categorize(latest)
	return AirQualityReport{AQI: latest, Category: category, Color: color}, nil
}

// CurrentConditions returns the provider's current weather block. Upstream
// failure degrades to an all-null report with no error.
func (s *Service) CurrentConditions(ctx context.Context, lat, lon float64) (ConditionsReport, error) {
	if err := validateCoords(lat, lon); err != nil {
		return ConditionsReport{}, err
	}

	payload, err := s.client.CurrentConditions(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("weather feed unavailable, serving empty conditions",
			zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		s.metrics.DegradedResponses.WithLabelValues("weather").Inc()
		return ConditionsReport{}, nil
	}

	cur := payload.Current
	return ConditionsReport{
		TempF:         cur.Temperature,
		ApparentTempF: cur.ApparentTemperature,
		WindSpeedMPH:  cur.WindSpeed,
		WindDirection: cur.WindDirection,
		WeatherCode:   cur.WeatherCode,
	}, nil
}

// latestAQI picks the most recent non-null finite entry from the hourly
// series, or nil when none exists.
func latestAQI(p openmeteo.AirQualityPayload) *float64 {
	series := p.Hourly.USAQI
	for i := len(series) - 1; i >= 0; i-- {
		v := series[i]
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		val := *v
		return &val
	}
	return nil
}

func unknownAirQuality() AirQualityReport {
	category, color := Categorize(nil)
	return AirQualityReport{Category: category, Color: color}
}

func validateCoords(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return ErrInvalidCoordinates
	}
	return nil
}
