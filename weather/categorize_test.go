package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func aqi(v float64) *float64 {
	return &v
}

func TestCategorize_Breakpoints(t *testing.T) {
	cases := []struct {
		name     string
		value    *float64
		category string
	}{
		{"zero", aqi(0), CategoryGood},
		{"good boundary", aqi(50), CategoryGood},
		{"moderate", aqi(51), CategoryModerate},
		{"moderate boundary", aqi(100), CategoryModerate},
		{"sensitive", aqi(150), CategorySensitive},
		{"unhealthy", aqi(151), CategoryUnhealthy},
		{"very unhealthy", aqi(250), CategoryVeryBad},
		{"hazardous", aqi(301), CategoryHazardous},
		{"absent", nil, CategoryUnknown},
		{"nan", aqi(math.NaN()), CategoryUnknown},
		{"inf", aqi(math.Inf(1)), CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category, color := Categorize(tc.value)
			assert.Equal(t, tc.category, category)
			assert.NotEmpty(t, color)
		})
	}
}

func TestCategorize_ColorsDifferPerBand(t *testing.T) {
	_, good := Categorize(aqi(10))
	_, hazardous := Categorize(aqi(400))
	_, unknown := Categorize(nil)

	assert.NotEqual(t, good, hazardous)
	assert.NotEqual(t, good, unknown)
}
