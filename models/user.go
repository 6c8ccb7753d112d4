package models

import (
	"time"

	"github.com/google/uuid"
)

// ConditionType is the respiratory condition a user reports
type ConditionType string

const (
	ConditionAsthma    ConditionType = "asthma"
	ConditionAllergies ConditionType = "allergies"
	ConditionBoth      ConditionType = "both"
)

// SensitivityLevel is the self-reported pollution sensitivity
type SensitivityLevel string

const (
	SensitivityLow    SensitivityLevel = "low"
	SensitivityMedium SensitivityLevel = "medium"
	SensitivityHigh   SensitivityLevel = "high"
)

// User represents a user account
type User struct {
	ID                   uuid.UUID        `json:"id"`
	Email                string           `json:"email"`
	PasswordHash         string           `json:"-"` // Never serialize password hash
	FirstName            *string          `json:"first_name,omitempty"`
	LastName             *string          `json:"last_name,omitempty"`
	DateOfBirth          *time.Time       `json:"date_of_birth,omitempty"`
	SexAtBirth           *string          `json:"sex_at_birth,omitempty"`
	Gender               *string          `json:"gender,omitempty"`
	Nationality          *string          `json:"nationality,omitempty"`
	ConditionType        ConditionType    `json:"condition_type"`
	SensitivityLevel     SensitivityLevel `json:"sensitivity_level"`
	AccessibilityMode    bool             `json:"accessibility_mode"`
	AnalyticsOptIn       bool             `json:"analytics_opt_in"`
	AcceptedDisclaimerAt *time.Time       `json:"accepted_disclaimer_at,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// ValidConditionType reports whether s is an accepted condition_type value
func ValidConditionType(s string) bool {
	switch ConditionType(s) {
	case ConditionAsthma, ConditionAllergies, ConditionBoth:
		return true
	}
	return false
}

// ValidSensitivityLevel reports whether s is an accepted sensitivity_level value
func ValidSensitivityLevel(s string) bool {
	switch SensitivityLevel(s) {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return true
	}
	return false
}
