package models

import "github.com/google/uuid"

// DashboardUser is the subset of the profile the dashboard needs
type DashboardUser struct {
	ConditionType     ConditionType    `json:"condition_type"`
	SensitivityLevel  SensitivityLevel `json:"sensitivity_level"`
	AccessibilityMode bool             `json:"accessibility_mode"`
}

// DashboardThresholds carries the stored threshold plus the effective trigger
type DashboardThresholds struct {
	TriggerAqi          *int `json:"trigger_aqi"`
	UseDefault          bool `json:"use_default"`
	EffectiveTriggerAqi int  `json:"effective_trigger_aqi"`
}

// DashboardStatus is the derived risk block shown at the top of the dashboard
type DashboardStatus struct {
	RiskLevel         RiskLevel `json:"risk_level"`
	DominantPollutant string    `json:"dominant_pollutant"`
	Explanation       string    `json:"explanation,omitempty"`
	Aqi               *int      `json:"aqi"`
}

// DashboardState flags conditions the frontend must resolve before data exists
type DashboardState struct {
	NeedsLocation bool `json:"needs_location"`
}

// DashboardMeta tags a payload produced by a refresh
type DashboardMeta struct {
	Refreshed bool      `json:"refreshed"`
	ReadingID uuid.UUID `json:"reading_id"`
}

// Dashboard is the full aggregated payload for GET /api/dashboard
type Dashboard struct {
	User            DashboardUser       `json:"user"`
	Location        *Location           `json:"location"`
	Thresholds      DashboardThresholds `json:"thresholds"`
	Status          DashboardStatus     `json:"status"`
	Reading         *AirQualityReading  `json:"reading"`
	Alerts          []RiskAssessment    `json:"alerts"`
	Recommendations []Recommendation    `json:"recommendations"`
	Trend           []AirQualityReading `json:"trend"`
	State           *DashboardState     `json:"state,omitempty"`
	Meta            *DashboardMeta      `json:"meta,omitempty"`
}

// TrendPoint is one normalized record from the public air-trends endpoint
type TrendPoint struct {
	Ts   int64    `json:"ts"` // unix millis
	Aqi  int      `json:"aqi"`
	Pm25 *float64 `json:"pm25"`
	Pm10 *float64 `json:"pm10"`
	No2  *float64 `json:"no2"`
	O3   *float64 `json:"o3"`
	So2  *float64 `json:"so2"`
	Co   *float64 `json:"co"`
}
