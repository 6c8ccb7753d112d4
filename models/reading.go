package models

import (
	"time"

	"github.com/google/uuid"
)

// AirQualityReading represents one stored air-quality observation for an area.
// Readings are keyed by area label and shared by every user who resolves to it.
type AirQualityReading struct {
	ID         uuid.UUID `json:"id"`
	AreaLabel  string    `json:"area_label"`
	ObservedAt time.Time `json:"observed_at"`
	Aqi        int       `json:"aqi"`
	Pm25       *float64  `json:"pm25"`
	Pm10       *float64  `json:"pm10"`
	No2        *float64  `json:"no2"`
	O3         *float64  `json:"o3"`
	So2        *float64  `json:"so2"`
	Co         *float64  `json:"co"`
}

// DominantPollutant returns the pollutant with the largest concentration.
// Ties go to the first pollutant encountered in the fixed field order.
// Returns "Unknown" when every concentration is absent.
func (r *AirQualityReading) DominantPollutant() string {
	fields := []struct {
		name  string
		value *float64
	}{
		{"pm2_5", r.Pm25},
		{"no2", r.No2},
		{"o3", r.O3},
		{"so2", r.So2},
		{"pm10", r.Pm10},
		{"co", r.Co},
	}

	dominant := "Unknown"
	best := 0.0
	found := false
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if !found || *f.value > best {
			dominant = f.name
			best = *f.value
			found = true
		}
	}
	return dominant
}
