package river

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/observability"
	"github.com/rivervalleyreport/backend/usgs"
)

// ErrEmptyStationID rejects requests before any upstream call is made.
var ErrEmptyStationID = errors.New("station id is required")

// GaugeClient fetches raw gauge readings for a site from the lookback start.
type GaugeClient interface {
	GaugeHeight(ctx context.Context, site string, start time.Time) (usgs.Payload, error)
}

// Service assembles station snapshots from upstream gauge data.
type Service struct {
	client         GaugeClient
	logger         *zap.Logger
	clock          clockwork.Clock
	metrics        *observability.Metrics
	lookback       time.Duration
	projectionDays int
}

// NewService wires a river data service. lookback bounds the history window
// and projectionDays fixes the projection length.
func NewService(client GaugeClient, logger *zap.Logger, clock clockwork.Clock, metrics *observability.Metrics, lookback time.Duration, projectionDays int) *Service {
	return &Service{
		client:         client,
		logger:         logger,
		clock:          clock,
		metrics:        metrics,
		lookback:       lookback,
		projectionDays: projectionDays,
	}
}

// StationSnapshot fetches, normalizes, annotates, and projects data for one
// station. Upstream failures never surface as errors: the caller always gets
// a well-formed snapshot, degraded to empty fields when the gauge feed is
// down, so the presentation layer can render "no data" instead of crashing.
// Only an empty station id is reported as an error, before any network call.
func (s *Service) StationSnapshot(ctx context.Context, site string) (Snapshot, error) {
	site = strings.TrimSpace(site)
	if site == "" {
		return Snapshot{}, ErrEmptyStationID
	}

	start := s.clock.Now().UTC().Add(-s.lookback)
	payload, err := s.client.GaugeHeight(ctx, site, start)
	if err != nil {
		s.logger.Warn("gauge feed unavailable, serving degraded snapshot",
			zap.String("site", site), zap.Error(err))
		s.metrics.DegradedResponses.WithLabelValues("river").Inc()
		return s.degraded(site), nil
	}

	n := Normalize(site, payload)

	snap := Snapshot{
		StationID:   site,
		DisplayName: n.DisplayName,
		Unit:        n.Unit,
		Coordinates: n.Coordinates,
		History:     n.History,
		Projection:  Project(n.History, s.projectionDays),
	}
	if len(n.History) > 0 {
		latest := n.History[len(n.History)-1]
		snap.Latest = &latest
	}
	if stage, ok := FloodStage(site); ok {
		snap.FloodThreshold = &stage
	}
	return snap, nil
}

// degraded builds the empty-but-valid snapshot served when upstream fails.
// The flood threshold needs no network, so it is still attached.
func (s *Service) degraded(site string) Snapshot {
	snap := Snapshot{
		StationID:   site,
		DisplayName: FallbackName(site),
		Unit:        DefaultUnit,
		History:     []Observation{},
		Projection:  []Observation{},
	}
	if stage, ok := FloodStage(site); ok {
		snap.FloodThreshold = &stage
	}
	return snap
}
