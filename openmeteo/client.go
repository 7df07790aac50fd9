// Package openmeteo fetches current weather and air-quality series from the
// Open-Meteo public APIs.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/observability"
	"github.com/rivervalleyreport/backend/upstream"
)

const providerName = "openmeteo"

// Client calls the Open-Meteo forecast and air-quality endpoints.
type Client struct {
	forecastURL   string
	airQualityURL string
	httpClient    *http.Client
	logger        *zap.Logger
	metrics       *observability.Metrics
}

// NewClient creates an Open-Meteo client with a finite request timeout.
func NewClient(forecastURL, airQualityURL string, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		forecastURL:   forecastURL,
		airQualityURL: airQualityURL,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
		metrics:       metrics,
	}
}

// CurrentConditions requests the current weather block for a coordinate pair
// in the units the frontend displays (fahrenheit, mph).
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (ForecastPayload, error) {
	params := coordParams(lat, lon)
	params.Set("current", "temperature_2m,apparent_temperature,wind_speed_10m,wind_direction_10m,weather_code")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("wind_speed_unit", "mph")
	params.Set("timezone", "auto")

	var payload ForecastPayload
	if err := c.get(ctx, c.forecastURL+"?"+params.Encode(), &payload); err != nil {
		return ForecastPayload{}, err
	}
	return payload, nil
}

// AirQuality requests the hourly US AQI series for a coordinate pair. The
// series may contain null entries, including trailing ones for hours not yet
// observed; the caller decides which sample counts as latest.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (AirQualityPayload, error) {
	params := coordParams(lat, lon)
	params.Set("hourly", "us_aqi")

	var payload AirQualityPayload
	if err := c.get(ctx, c.airQualityURL+"?"+params.Encode(), &payload); err != nil {
		return AirQualityPayload{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &upstream.Error{Provider: providerName, Err: err}
	}

	began := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(providerName).Observe(time.Since(began).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return &upstream.Error{Provider: providerName, Err: fmt.Errorf("request conditions: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return &upstream.Error{Provider: providerName, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return &upstream.Error{Provider: providerName, Err: fmt.Errorf("decode payload: %w", err)}
	}

	c.metrics.UpstreamRequests.WithLabelValues(providerName, "success").Inc()
	return nil
}

func coordParams(lat, lon float64) url.Values {
	return url.Values{
		"latitude":  {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
}
