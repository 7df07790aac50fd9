package river

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rivervalleyreport/backend/usgs"
)

// DefaultUnit is assumed when the upstream payload omits a unit code.
const DefaultUnit = "ft"

// Normalized holds the station fields extracted from a raw payload.
type Normalized struct {
	DisplayName string
	Unit        string
	Coordinates *Coordinates
	History     []Observation
}

// FallbackName builds the display name used when the payload carries none.
func FallbackName(site string) string {
	return fmt.Sprintf("Station %s", site)
}

// Normalize extracts station metadata and the ordered observation history
// from a raw USGS payload. A payload without a time series is not an error;
// it yields the documented empty result. Samples whose value does not parse
// to a finite number are dropped silently, never defaulted, and the upstream
// ordering (chronological, oldest first) is preserved as received.
func Normalize(site string, p usgs.Payload) Normalized {
	n := Normalized{
		DisplayName: FallbackName(site),
		Unit:        DefaultUnit,
		History:     []Observation{},
	}

	if len(p.Value.TimeSeries) == 0 {
		return n
	}

	ts := p.Value.TimeSeries[0]
	if ts.SourceInfo.SiteName != "" {
		n.DisplayName = ts.SourceInfo.SiteName
	} else if len(ts.SourceInfo.SiteCode) > 0 && ts.SourceInfo.SiteCode[0].Value != "" {
		n.DisplayName = FallbackName(ts.SourceInfo.SiteCode[0].Value)
	}

	if ts.Variable.Unit.UnitCode != "" {
		n.Unit = ts.Variable.Unit.UnitCode
	}

	geog := ts.SourceInfo.GeoLocation.GeogLocation
	if geog.Latitude != nil && geog.Longitude != nil {
		n.Coordinates = &Coordinates{Lat: *geog.Latitude, Lon: *geog.Longitude}
	}

	if len(ts.Values) == 0 {
		return n
	}

	for _, sample := range ts.Values[0].Value {
		v, err := strconv.ParseFloat(sample.Value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		t, err := parseTimestamp(sample.DateTime)
		if err != nil {
			continue
		}
		n.History = append(n.History, Observation{Timestamp: t, Value: v})
	}

	return n
}

// parseTimestamp accepts the ISO-8601 variants USGS emits, with or without
// fractional seconds.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000-07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
