// Package river turns raw USGS gauge payloads into the snapshot shape the
// frontend renders: latest reading, recent history, a short linear
// projection, and a static flood-stage annotation.
package river

import "time"

// Observation is a single point in a station time series.
type Observation struct {
	Timestamp time.Time `json:"ts"`
	Value     float64   `json:"value"`
}

// Coordinates is the station's geographic location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Snapshot is the per-request response unit for a station. It is built fresh
// for every request and never cached.
type Snapshot struct {
	StationID      string        `json:"station_id"`
	DisplayName    string        `json:"display_name"`
	Unit           string        `json:"unit"`
	Coordinates    *Coordinates  `json:"coordinates,omitempty"`
	Latest         *Observation  `json:"latest,omitempty"`
	FloodThreshold *float64      `json:"flood_threshold"`
	History        []Observation `json:"history"`
	Projection     []Observation `json:"projection"`
}
