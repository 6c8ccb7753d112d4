package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is a coarse severity bucket derived from AQI vs. the user's trigger
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Rank orders risk levels: Low=1, Medium=2, High=3
func (l RiskLevel) Rank() int {
	switch l {
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 1
	}
}

// RiskAssessment is a recorded alert for a user
type RiskAssessment struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	RiskLevel         RiskLevel `json:"risk_level"`
	DominantPollutant string    `json:"dominant_pollutant"`
	Explanation       string    `json:"explanation"`
	CreatedAt         time.Time `json:"created_at"`
}

// DeriveRiskLevel maps a reading's AQI against the effective trigger
func DeriveRiskLevel(aqi, trigger int) RiskLevel {
	switch {
	case aqi >= trigger:
		return RiskHigh
	case aqi == trigger-1:
		return RiskMedium
	default:
		return RiskLow
	}
}
