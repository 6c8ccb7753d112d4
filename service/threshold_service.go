package service

import (
	"context"
	"strings"

	"airaware-backend/models"

	"github.com/google/uuid"
)

// ThresholdRepository is the datastore surface for threshold rows
type ThresholdRepository interface {
	Upsert(ctx context.Context, threshold *models.Threshold) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Threshold, error)
}

// SensitivityChoices are the accepted sensitivity inputs, in AQI order
var SensitivityChoices = []string{"good", "fair", "moderate", "poor", "very_poor", "unknown"}

var sensitivityAqi = map[string]int{
	"good":      1,
	"fair":      2,
	"moderate":  3,
	"poor":      4,
	"very_poor": 5,
}

// ThresholdService maps sensitivity choices onto AQI triggers and persists them
type ThresholdService struct {
	thresholdRepo ThresholdRepository
}

// ThresholdServiceOption is a functional option for ThresholdService
type ThresholdServiceOption func(*ThresholdService)

// ThresholdWithThresholdRepository sets the threshold repository
func ThresholdWithThresholdRepository(repo ThresholdRepository) ThresholdServiceOption {
	return func(s *ThresholdService) {
		s.thresholdRepo = repo
	}
}

// NewThresholdService creates a new threshold service
func NewThresholdService(opts ...ThresholdServiceOption) *ThresholdService {
	s := &ThresholdService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MapSensitivity translates a sensitivity choice into a trigger AQI.
// "unknown" and "i don't know" select the fixed default.
func MapSensitivity(sensitivity string) (triggerAqi *int, useDefault bool, err error) {
	choice := strings.ToLower(strings.TrimSpace(sensitivity))
	if choice == "unknown" || choice == "i don't know" {
		return nil, true, nil
	}
	if aqi, ok := sensitivityAqi[choice]; ok {
		return &aqi, false, nil
	}
	return nil, false, NewValidationError(
		"Invalid sensitivity; valid choices: " + strings.Join(SensitivityChoices, ", "))
}

// ThresholdResult carries the stored row plus the effective trigger
type ThresholdResult struct {
	Threshold           *models.Threshold
	EffectiveTriggerAqi int
}

// Set maps and persists the user's sensitivity choice
func (s *ThresholdService) Set(ctx context.Context, userID uuid.UUID, sensitivity string) (*ThresholdResult, error) {
	triggerAqi, useDefault, err := MapSensitivity(sensitivity)
	if err != nil {
		return nil, err
	}

	threshold := &models.Threshold{
		UserID:     userID,
		TriggerAqi: triggerAqi,
		UseDefault: useDefault,
	}
	if err := s.thresholdRepo.Upsert(ctx, threshold); err != nil {
		return nil, err
	}

	return &ThresholdResult{
		Threshold:           threshold,
		EffectiveTriggerAqi: threshold.EffectiveTriggerAqi(),
	}, nil
}

// Get returns the user's stored threshold, ErrNotFound if never set
func (s *ThresholdService) Get(ctx context.Context, userID uuid.UUID) (*ThresholdResult, error) {
	threshold, err := s.thresholdRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ThresholdResult{
		Threshold:           threshold,
		EffectiveTriggerAqi: threshold.EffectiveTriggerAqi(),
	}, nil
}

// Defaults describes the fixed default trigger and the accepted choices
type Defaults struct {
	DefaultTriggerAqi int      `json:"default_trigger_aqi"`
	Choices           []string `json:"choices"`
}

// GetDefaults returns the public threshold defaults
func (s *ThresholdService) GetDefaults() Defaults {
	return Defaults{
		DefaultTriggerAqi: models.DefaultTriggerAqi,
		Choices:           SensitivityChoices,
	}
}
