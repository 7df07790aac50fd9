// Package usgs fetches instantaneous gauge readings from the USGS water
// services API.
package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/observability"
	"github.com/rivervalleyreport/backend/upstream"
)

// Parameter code 00065 = gage height in feet.
const gaugeHeightParameter = "00065"

const providerName = "usgs"

// Client calls the USGS instant-values endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewClient creates a USGS client with a finite request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// GaugeHeight requests gage-height readings for a site over the lookback
// window ending now. No retries; failures surface immediately as
// *upstream.Error and the caller decides fallback behavior.
func (c *Client) GaugeHeight(ctx context.Context, site string, start time.Time) (Payload, error) {
	params := url.Values{
		"format":      {"json"},
		"sites":       {site},
		"parameterCd": {gaugeHeightParameter},
		"siteStatus":  {"all"},
		"startDT":     {start.UTC().Format(time.RFC3339)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Payload{}, &upstream.Error{Provider: providerName, Err: err}
	}

	began := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(providerName).Observe(time.Since(began).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return Payload{}, &upstream.Error{Provider: providerName, Err: fmt.Errorf("request gauge readings: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return Payload{}, &upstream.Error{Provider: providerName, Status: resp.StatusCode}
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return Payload{}, &upstream.Error{Provider: providerName, Err: fmt.Errorf("decode payload: %w", err)}
	}

	c.metrics.UpstreamRequests.WithLabelValues(providerName, "success").Inc()
	c.logger.Debug("fetched gauge readings", zap.String("site", site), zap.Int("series", len(payload.Value.TimeSeries)))
	return payload, nil
}
