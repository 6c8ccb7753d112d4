package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airaware-backend/models"
	"airaware-backend/repository"
	"airaware-backend/weatherapi"

	"github.com/google/uuid"
)

// Dashboard aggregation limits
const (
	maxDashboardAlerts = 10
	trendLength        = 24
)

// ReadingRepository is the datastore surface for air-quality readings
type ReadingRepository interface {
	Create(ctx context.Context, reading *models.AirQualityReading) error
	LatestByLabel(ctx context.Context, areaLabel string) (*models.AirQualityReading, error)
	RecentByLabel(ctx context.Context, areaLabel string, limit int) ([]models.AirQualityReading, error)
}

// RiskAssessmentRepository is the datastore surface for alerts
type RiskAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.RiskAssessment) error
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.RiskAssessment, error)
}

// RecommendationRepository is the datastore surface for recommendations
type RecommendationRepository interface {
	ListForRisk(ctx context.Context, condition models.ConditionType, maxRank int) ([]models.Recommendation, error)
}

// PollutionFetcher is the live air-pollution surface of the external provider
type PollutionFetcher interface {
	CurrentAirPollution(ctx context.Context, lat, lon float64) (*weatherapi.PollutionRecord, error)
}

// DashboardService assembles the dashboard payload and handles refreshes
type DashboardService struct {
	userRepo      UserRepository
	locationRepo  LocationRepository
	thresholdRepo ThresholdRepository
	readingRepo   ReadingRepository
	riskRepo      RiskAssessmentRepository
	recRepo       RecommendationRepository
	pollution     PollutionFetcher
}

// DashboardServiceOption is a functional option for DashboardService
type DashboardServiceOption func(*DashboardService)

// DashboardWithUserRepository sets the user repository
func DashboardWithUserRepository(repo UserRepository) DashboardServiceOption {
	return func(s *DashboardService) {
		s.userRepo = repo
	}
}

// DashboardWithLocationRepository sets the location repository
func DashboardWithLocationRepository(repo LocationRepository) DashboardServiceOption {
	return func(s *DashboardService) {
		s.locationRepo = repo
	}
}

// DashboardWithThresholdRepository sets the threshold repository
func DashboardWithThresholdRepository(repo ThresholdRepository) DashboardServiceOption {
	return func(s *DashboardService) {
		s.thresholdRepo = repo
	}
}

// DashboardWithReadingRepository sets the reading repository
func DashboardWithReadingRepository(repo ReadingRepository) DashboardServiceOption {
	return func(s *DashboardService) {
		s.readingRepo = repo
	}
}

// DashboardWithRiskAssessmentRepository sets the risk assessment repository
func DashboardWithRiskAssessmentRepository(repo RiskAssessmentRepository) DashboardServiceOption {
	return func(s *DashboardService) {
		s.riskRepo = repo
	}
}

// DashboardWithRecommendationRepository sets the recommendation repository
func DashboardWithRecommendationRepository(repo RecommendationRepository) DashboardServiceOption {
	return func(s *DashboardService) {
		s.recRepo = repo
	}
}

// DashboardWithPollutionFetcher sets the external pollution fetcher
func DashboardWithPollutionFetcher(fetcher PollutionFetcher) DashboardServiceOption {
	return func(s *DashboardService) {
		s.pollution = fetcher
	}
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(opts ...DashboardServiceOption) *DashboardService {
	s := &DashboardService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build runs the full dashboard aggregation for a user
func (s *DashboardService) Build(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		User: models.DashboardUser{
			ConditionType:     user.ConditionType,
			SensitivityLevel:  user.SensitivityLevel,
			AccessibilityMode: user.AccessibilityMode,
		},
		Alerts:          []models.RiskAssessment{},
		Recommendations: []models.Recommendation{},
		Trend:           []models.AirQualityReading{},
	}

	location, err := s.locationRepo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			dashboard.Thresholds = models.DashboardThresholds{
				UseDefault:          true,
				EffectiveTriggerAqi: models.DefaultTriggerAqi,
			}
			dashboard.Status = models.DashboardStatus{
				RiskLevel:         models.RiskLow,
				DominantPollutant: "Unknown",
			}
			dashboard.State = &models.DashboardState{NeedsLocation: true}
			return dashboard, nil
		}
		return nil, err
	}
	dashboard.Location = location

	threshold, err := s.thresholdRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	trigger := threshold.EffectiveTriggerAqi()
	dashboard.Thresholds = models.DashboardThresholds{
		EffectiveTriggerAqi: trigger,
		UseDefault:          true,
	}
	if threshold != nil {
		dashboard.Thresholds.TriggerAqi = threshold.TriggerAqi
		dashboard.Thresholds.UseDefault = threshold.UseDefault
	}

	reading, err := s.readingRepo.LatestByLabel(ctx, location.Label)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	dashboard.Reading = reading

	alerts, err := s.riskRepo.RecentByUser(ctx, userID, maxDashboardAlerts)
	if err != nil {
		return nil, err
	}
	if alerts != nil {
		dashboard.Alerts = alerts
	}

	dashboard.Status = deriveStatus(alerts, reading, trigger)

	recommendations, err := s.recRepo.ListForRisk(ctx, user.ConditionType, dashboard.Status.RiskLevel.Rank())
	if err != nil {
		return nil, err
	}
	if recommendations != nil {
		dashboard.Recommendations = recommendations
	}

	trend, err := s.readingRepo.RecentByLabel(ctx, location.Label, trendLength)
	if err != nil {
		return nil, err
	}
	// Queried newest-first; the payload is chronological.
	for i, j := 0, len(trend)-1; i < j; i, j = i+1, j-1 {
		trend[i], trend[j] = trend[j], trend[i]
	}
	if trend != nil {
		dashboard.Trend = trend
	}

	return dashboard, nil
}

// Refresh fetches a fresh reading for the user's active location, records an
// alert when the threshold is crossed, and re-runs the aggregation.
// Returns ErrNoLocation without touching the external API when the user has
// no saved location.
func (s *DashboardService) Refresh(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error) {
	location, err := s.locationRepo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoLocation
		}
		return nil, err
	}

	record, err := s.pollution.CurrentAirPollution(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	reading := &models.AirQualityReading{
		AreaLabel:  location.Label,
		ObservedAt: time.Unix(record.Dt, 0).UTC(),
		Aqi:        record.Main.Aqi,
		Pm25:       record.Components.Pm25,
		Pm10:       record.Components.Pm10,
		No2:        record.Components.No2,
		O3:         record.Components.O3,
		So2:        record.Components.So2,
		Co:         record.Components.Co,
	}
	if err := s.readingRepo.Create(ctx, reading); err != nil {
		return nil, err
	}

	threshold, err := s.thresholdRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	trigger := threshold.EffectiveTriggerAqi()

	level := models.DeriveRiskLevel(reading.Aqi, trigger)
	if level != models.RiskLow {
		dominant := reading.DominantPollutant()
		assessment := &models.RiskAssessment{
			UserID:            userID,
			RiskLevel:         level,
			DominantPollutant: dominant,
			Explanation: fmt.Sprintf("AQI %d at %s with elevated %s against a trigger of %d",
				reading.Aqi, location.Label, dominant, trigger),
		}
		if err := s.riskRepo.Create(ctx, assessment); err != nil {
			return nil, err
		}
	}

	dashboard, err := s.Build(ctx, userID)
	if err != nil {
		return nil, err
	}
	dashboard.Meta = &models.DashboardMeta{
		Refreshed: true,
		ReadingID: reading.ID,
	}
	return dashboard, nil
}

// deriveStatus builds the status block: the newest alert verbatim when one
// exists, otherwise risk derived from the current reading.
func deriveStatus(alerts []models.RiskAssessment, reading *models.AirQualityReading, trigger int) models.DashboardStatus {
	var aqi *int
	if reading != nil {
		aqi = &reading.Aqi
	}

	if len(alerts) > 0 {
		newest := alerts[0]
		return models.DashboardStatus{
			RiskLevel:         newest.RiskLevel,
			DominantPollutant: newest.DominantPollutant,
			Explanation:       newest.Explanation,
			Aqi:               aqi,
		}
	}

	if reading == nil {
		return models.DashboardStatus{
			RiskLevel:         models.RiskLow,
			DominantPollutant: "Unknown",
		}
	}

	return models.DashboardStatus{
		RiskLevel:         models.DeriveRiskLevel(reading.Aqi, trigger),
		DominantPollutant: reading.DominantPollutant(),
		Aqi:               aqi,
	}
}
