package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTriggerAqi is the AQI used when a user keeps the default threshold ("Moderate")
const DefaultTriggerAqi = 3

// Threshold represents a user's pollution-sensitivity threshold row
type Threshold struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	TriggerAqi *int      `json:"trigger_aqi"`
	UseDefault bool      `json:"use_default"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EffectiveTriggerAqi returns the AQI the risk derivation actually uses
func (t *Threshold) EffectiveTriggerAqi() int {
	if t == nil || t.UseDefault || t.TriggerAqi == nil {
		return DefaultTriggerAqi
	}
	return *t.TriggerAqi
}
