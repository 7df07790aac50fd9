package usgs

// Payload models the USGS instant-values JSON response. Only the fields the
// normalizer consumes are declared; the rest of the document is ignored.
type Payload struct {
	Value struct {
		TimeSeries []TimeSeries `json:"timeSeries"`
	} `json:"value"`
}

// TimeSeries is one variable/site series inside the payload.
type TimeSeries struct {
	SourceInfo SourceInfo `json:"sourceInfo"`
	Variable   Variable   `json:"variable"`
	Values     []Values   `json:"values"`
}

// SourceInfo carries site metadata.
type SourceInfo struct {
	SiteName    string     `json:"siteName"`
	SiteCode    []SiteCode `json:"siteCode"`
	GeoLocation struct {
		GeogLocation struct {
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		} `json:"geogLocation"`
	} `json:"geoLocation"`
}

// SiteCode is a coded site identifier entry.
type SiteCode struct {
	Value string `json:"value"`
}

// Variable describes the measured parameter.
type Variable struct {
	Unit struct {
		UnitCode string `json:"unitCode"`
	} `json:"unit"`
}

// Values wraps the sample list for a series.
type Values struct {
	Value []Sample `json:"value"`
}

// Sample is a single raw reading. Value arrives as a string and may be
// non-numeric; the normalizer decides what to keep.
type Sample struct {
	Value    string `json:"value"`
	DateTime string `json:"dateTime"`
}
