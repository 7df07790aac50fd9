package river

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/observability"
	"github.com/rivervalleyreport/backend/upstream"
	"github.com/rivervalleyreport/backend/usgs"
)

type fakeGaugeClient struct {
	payload   usgs.Payload
	err       error
	calls     int
	lastSite  string
	lastStart time.Time
}

func (f *fakeGaugeClient) GaugeHeight(_ context.Context, site string, start time.Time) (usgs.Payload, error) {
	f.calls++
	f.lastSite = site
	f.lastStart = start
	return f.payload, f.err
}

func newTestService(client GaugeClient, clock clockwork.Clock) *Service {
	return NewService(client, zap.NewNop(), clock, observability.NewMetricsForTesting(), 3*24*time.Hour, 10)
}

func TestStationSnapshot_EmptySiteNoNetworkCall(t *testing.T) {
	client := &fakeGaugeClient{}
	svc := newTestService(client, clockwork.NewFakeClock())

	_, err := svc.StationSnapshot(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyStationID)
	assert.Equal(t, 0, client.calls)

	_, err = svc.StationSnapshot(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyStationID)
	assert.Equal(t, 0, client.calls)
}

func TestStationSnapshot_UpstreamFailureDegrades(t *testing.T) {
	for name, clientErr := range map[string]error{
		"http status":  &upstream.Error{Provider: "usgs", Status: 503},
		"transport":    &upstream.Error{Provider: "usgs", Err: context.DeadlineExceeded},
		"generic fail": assert.AnError,
	} {
		t.Run(name, func(t *testing.T) {
			client := &fakeGaugeClient{err: clientErr}
			svc := newTestService(client, clockwork.NewFakeClock())

			snap, err := svc.StationSnapshot(context.Background(), "03322420")
			require.NoError(t, err, "upstream failure must never surface as an error")

			assert.Equal(t, "03322420", snap.StationID)
			assert.Equal(t, "Station 03322420", snap.DisplayName)
			assert.Equal(t, "ft", snap.Unit)
			assert.Nil(t, snap.Latest)
			assert.Empty(t, snap.History)
			assert.Empty(t, snap.Projection)

			// flood threshold needs no network, so it is still attached
			require.NotNil(t, snap.FloodThreshold)
			assert.Equal(t, 40.0, *snap.FloodThreshold)
		})
	}
}

func TestStationSnapshot_DegradedUnknownSiteHasNilThreshold(t *testing.T) {
	client := &fakeGaugeClient{err: &upstream.Error{Provider: "usgs", Status: 500}}
	svc := newTestService(client, clockwork.NewFakeClock())

	snap, err := svc.StationSnapshot(context.Background(), "00000000")
	require.NoError(t, err)
	assert.Nil(t, snap.FloodThreshold)
}

func TestStationSnapshot_Success(t *testing.T) {
	raw := `{
	  "value": {"timeSeries": [{
	    "sourceInfo": {
	      "siteName": "OHIO RIVER AT HENDERSON",
	      "geoLocation": {"geogLocation": {"latitude": 37.83, "longitude": -87.59}}
	    },
	    "variable": {"unit": {"unitCode": "ft"}},
	    "values": [{"value": [
	      {"value": "10.0", "dateTime": "2026-03-01T12:00:00.000-05:00"},
	      {"value": "12.0", "dateTime": "2026-03-02T12:00:00.000-05:00"}
	    ]}]
	  }]}
	}`
	var payload usgs.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	now := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	client := &fakeGaugeClient{payload: payload}
	svc := newTestService(client, clock)

	snap, err := svc.StationSnapshot(context.Background(), "03322190")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "03322190", client.lastSite)
	assert.Equal(t, now.Add(-3*24*time.Hour), client.lastStart)

	assert.Equal(t, "OHIO RIVER AT HENDERSON", snap.DisplayName)
	require.Len(t, snap.History, 2)

	require.NotNil(t, snap.Latest)
	assert.Equal(t, 12.0, snap.Latest.Value)
	assert.Equal(t, snap.History[1], *snap.Latest)

	require.Len(t, snap.Projection, 10)
	assert.Equal(t, 14.00, snap.Projection[0].Value)
	assert.Equal(t, snap.Latest.Timestamp.Add(24*time.Hour), snap.Projection[0].Timestamp)

	require.NotNil(t, snap.FloodThreshold)
	assert.Equal(t, 36.0, *snap.FloodThreshold)

	require.NotNil(t, snap.Coordinates)
	assert.Equal(t, 37.83, snap.Coordinates.Lat)
}

func TestStationSnapshot_EmptySeriesYieldsEmptySnapshot(t *testing.T) {
	client := &fakeGaugeClient{payload: usgs.Payload{}}
	svc := newTestService(client, clockwork.NewFakeClock())

	snap, err := svc.StationSnapshot(context.Background(), "03384500")
	require.NoError(t, err)

	assert.Nil(t, snap.Latest)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.Projection, "projection must never be fabricated without history")
}
