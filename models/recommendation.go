package models

import "github.com/google/uuid"

// Recommendation is a piece of advice shown on the dashboard when the
// current risk reaches its minimum level and it matches the user's condition
type Recommendation struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Text          string    `json:"text"`
	MinRiskLevel  RiskLevel `json:"min_risk_level"`
	ConditionType string    `json:"condition_type"` // 'any' or a specific condition
	IsActive      bool      `json:"is_active"`
}
