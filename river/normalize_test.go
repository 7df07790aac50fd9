package river

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivervalleyreport/backend/usgs"
)

const samplePayload = `{
  "value": {
    "timeSeries": [
      {
        "sourceInfo": {
          "siteName": "OHIO RIVER AT J.T. MYERS L&D",
          "siteCode": [{"value": "03322420"}],
          "geoLocation": {"geogLocation": {"latitude": 37.79, "longitude": -87.98}}
        },
        "variable": {"unit": {"unitCode": "ft"}},
        "values": [
          {
            "value": [
              {"value": "12.10", "dateTime": "2026-03-01T10:00:00.000-05:00"},
              {"value": "abc", "dateTime": "2026-03-01T10:15:00.000-05:00"},
              {"value": "12.35", "dateTime": "2026-03-01T10:30:00.000-05:00"}
            ]
          }
        ]
      }
    ]
  }
}`

func decodePayload(t *testing.T, raw string) usgs.Payload {
	t.Helper()
	var p usgs.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestNormalize_DropsMalformedSamples(t *testing.T) {
	n := Normalize("03322420", decodePayload(t, samplePayload))

	require.Len(t, n.History, 2)
	assert.Equal(t, 12.10, n.History[0].Value)
	assert.Equal(t, 12.35, n.History[1].Value)
	assert.Equal(t, "OHIO RIVER AT J.T. MYERS L&D", n.DisplayName)
	assert.Equal(t, "ft", n.Unit)

	require.NotNil(t, n.Coordinates)
	assert.Equal(t, 37.79, n.Coordinates.Lat)
	assert.Equal(t, -87.98, n.Coordinates.Lon)
}

func TestNormalize_PreservesUpstreamOrder(t *testing.T) {
	n := Normalize("03322420", decodePayload(t, samplePayload))

	require.Len(t, n.History, 2)
	assert.True(t, n.History[0].Timestamp.Before(n.History[1].Timestamp))
}

func TestNormalize_EmptyPayloadIsNotAnError(t *testing.T) {
	n := Normalize("99999999", usgs.Payload{})

	assert.Equal(t, "Station 99999999", n.DisplayName)
	assert.Equal(t, "ft", n.Unit)
	assert.Nil(t, n.Coordinates)
	assert.Empty(t, n.History)
}

func TestNormalize_RejectsNonFiniteValues(t *testing.T) {
	raw := `{
	  "value": {"timeSeries": [{
	    "sourceInfo": {"siteName": "X"},
	    "variable": {"unit": {"unitCode": "ft"}},
	    "values": [{"value": [
	      {"value": "NaN", "dateTime": "2026-03-01T10:00:00.000-05:00"},
	      {"value": "+Inf", "dateTime": "2026-03-01T10:15:00.000-05:00"},
	      {"value": "3.5", "dateTime": "2026-03-01T10:30:00.000-05:00"}
	    ]}]
	  }]}
	}`

	n := Normalize("X", decodePayload(t, raw))
	require.Len(t, n.History, 1)
	assert.Equal(t, 3.5, n.History[0].Value)
}

func TestNormalize_CoordinatesOmittedWhenPartial(t *testing.T) {
	raw := `{
	  "value": {"timeSeries": [{
	    "sourceInfo": {
	      "siteName": "X",
	      "geoLocation": {"geogLocation": {"latitude": 37.79}}
	    },
	    "variable": {"unit": {"unitCode": "ft"}},
	    "values": []
	  }]}
	}`

	n := Normalize("X", decodePayload(t, raw))
	assert.Nil(t, n.Coordinates)
}

func TestNormalize_UnitDefaultsWhenAbsent(t *testing.T) {
	raw := `{
	  "value": {"timeSeries": [{
	    "sourceInfo": {"siteName": "Somewhere"},
	    "variable": {"unit": {"unitCode": ""}},
	    "values": []
	  }]}
	}`

	n := Normalize("X", decodePayload(t, raw))
	assert.Equal(t, "ft", n.Unit)
}

func TestParseTimestamp_USGSOffsetFormat(t *testing.T) {
	parsed, err := parseTimestamp("2026-03-01T10:00:00.000-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC), parsed.UTC())
}
