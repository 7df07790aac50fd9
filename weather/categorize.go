package weather

import "math"

// AQI category labels and display colors, keyed by the standard US AQI
// breakpoints.
const (
	CategoryGood      = "Good"
	CategoryModerate  = "Moderate"
	CategorySensitive = "Unhealthy for Sensitive Groups"
	CategoryUnhealthy = "Unhealthy"
	CategoryVeryBad   = "Very Unhealthy"
	CategoryHazardous = "Hazardous"
	CategoryUnknown   = "Unknown"
)

type aqiBand struct {
	limit    float64
	category string
	color    string
}

var aqiBands = []aqiBand{
	{50, CategoryGood, "#00e400"},
	{100, CategoryModerate, "#ffff00"},
	{150, CategorySensitive, "#ff7e00"},
	{200, CategoryUnhealthy, "#ff0000"},
	{300, CategoryVeryBad, "#8f3f97"},
	{math.Inf(1), CategoryHazardous, "#7e0023"},
}

const unknownColor = "#9e9e9e"

// Categorize maps an AQI value to its severity category and display color.
// A nil or non-finite value maps to Unknown.
func Categorize(aqi *float64) (category, color string) {
	if aqi == nil || math.IsNaN(*aqi) || math.IsInf(*aqi, 0) {
		return CategoryUnknown, unknownColor
	}
	for _, band := range aqiBands {
		if *aqi <= band.limit {
			return band.category, band.color
		}
	}
	return CategoryUnknown, unknownColor
}
