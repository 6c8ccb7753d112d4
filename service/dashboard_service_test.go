package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"airaware-backend/models"
	"airaware-backend/weatherapi"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	svc       *DashboardService
	userID    uuid.UUID
	users     *fakeUserRepo
	locations *fakeLocationRepo
	threshold *fakeThresholdRepo
	readings  *fakeReadingRepo
	risks     *fakeRiskRepo
	recs      *fakeRecRepo
	pollution *fakePollution
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	f := &dashboardFixture{
		users:     newFakeUserRepo(),
		locations: &fakeLocationRepo{},
		threshold: &fakeThresholdRepo{},
		readings:  &fakeReadingRepo{},
		risks:     &fakeRiskRepo{},
		recs:      &fakeRecRepo{},
		pollution: &fakePollution{},
	}

	user := &models.User{Email: "test@airaware.com", PasswordHash: "x", ConditionType: models.ConditionBoth}
	require.NoError(t, f.users.Create(context.Background(), user))
	f.userID = user.ID

	f.svc = NewDashboardService(
		DashboardWithUserRepository(f.users),
		DashboardWithLocationRepository(f.locations),
		DashboardWithThresholdRepository(f.threshold),
		DashboardWithReadingRepository(f.readings),
		DashboardWithRiskAssessmentRepository(f.risks),
		DashboardWithRecommendationRepository(f.recs),
		DashboardWithPollutionFetcher(f.pollution),
	)
	return f
}

func (f *dashboardFixture) withLocation() *models.Location {
	location := &models.Location{
		ID:        uuid.New(),
		UserID:    f.userID,
		Label:     "London, GB",
		Latitude:  51.5,
		Longitude: -0.12,
		IsHome:    true,
		CreatedAt: time.Now(),
	}
	f.locations.active = location
	return location
}

func reading(aqi int, observedAt time.Time) models.AirQualityReading {
	return models.AirQualityReading{
		ID:         uuid.New(),
		AreaLabel:  "London, GB",
		ObservedAt: observedAt,
		Aqi:        aqi,
	}
}

func TestBuildWithoutLocation(t *testing.T) {
	f := newDashboardFixture(t)

	dashboard, err := f.svc.Build(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Nil(t, dashboard.Location)
	assert.Empty(t, dashboard.Recommendations)
	assert.NotNil(t, dashboard.Recommendations)
	assert.Empty(t, dashboard.Alerts)
	assert.NotNil(t, dashboard.Alerts)
	assert.Empty(t, dashboard.Trend)
	assert.NotNil(t, dashboard.Trend)
	assert.True(t, dashboard.Thresholds.UseDefault)
	assert.Equal(t, models.DefaultTriggerAqi, dashboard.Thresholds.EffectiveTriggerAqi)
	require.NotNil(t, dashboard.State)
	assert.True(t, dashboard.State.NeedsLocation)
}

func TestBuildStatusDerivedFromReading(t *testing.T) {
	tests := []struct {
		name    string
		aqi     int
		trigger int
		want    models.RiskLevel
	}{
		{"at trigger", 3, 3, models.RiskHigh},
		{"above trigger", 5, 3, models.RiskHigh},
		{"one below trigger", 2, 3, models.RiskMedium},
		{"well below trigger", 1, 3, models.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashboardFixture(t)
			f.withLocation()
			f.threshold.threshold = &models.Threshold{
				UserID:     f.userID,
				TriggerAqi: &tt.trigger,
			}
			latest := reading(tt.aqi, time.Now())
			f.readings.latest = &latest

			dashboard, err := f.svc.Build(context.Background(), f.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dashboard.Status.RiskLevel)
			require.NotNil(t, dashboard.Status.Aqi)
			assert.Equal(t, tt.aqi, *dashboard.Status.Aqi)
		})
	}
}

func TestBuildStatusUsesNewestAlertVerbatim(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()
	latest := reading(2, time.Now())
	f.readings.latest = &latest
	f.risks.assessments = []models.RiskAssessment{
		{
			ID:                uuid.New(),
			UserID:            f.userID,
			RiskLevel:         models.RiskHigh,
			DominantPollutant: "pm2_5",
			Explanation:       "AQI 4 at London, GB with elevated pm2_5 against a trigger of 3",
			CreatedAt:         time.Now(),
		},
		{
			ID:        uuid.New(),
			UserID:    f.userID,
			RiskLevel: models.RiskMedium,
			CreatedAt: time.Now().Add(-time.Hour),
		},
	}

	dashboard, err := f.svc.Build(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, dashboard.Status.RiskLevel)
	assert.Equal(t, "pm2_5", dashboard.Status.DominantPollutant)
	assert.Contains(t, dashboard.Status.Explanation, "elevated pm2_5")
	// Paired with the current AQI even though the alert predates the reading.
	require.NotNil(t, dashboard.Status.Aqi)
	assert.Equal(t, 2, *dashboard.Status.Aqi)
}

func TestBuildStatusWithoutReading(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()

	dashboard, err := f.svc.Build(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, models.RiskLow, dashboard.Status.RiskLevel)
	assert.Equal(t, "Unknown", dashboard.Status.DominantPollutant)
	assert.Nil(t, dashboard.Status.Aqi)
}

func TestDominantPollutantTieBreak(t *testing.T) {
	r := models.AirQualityReading{
		Pm25: floatPtr(40),
		No2:  floatPtr(40),
		O3:   floatPtr(12),
	}
	// pm2_5 wins the tie because it comes first in the fixed field order.
	assert.Equal(t, "pm2_5", r.DominantPollutant())

	r = models.AirQualityReading{
		No2:  floatPtr(40),
		Pm10: floatPtr(55),
	}
	assert.Equal(t, "pm10", r.DominantPollutant())

	empty := models.AirQualityReading{}
	assert.Equal(t, "Unknown", empty.DominantPollutant())
}

func TestBuildTrendIsChronological(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()

	base := time.Now().Truncate(time.Hour)
	// Stored newest-first, as the query returns them.
	f.readings.recent = []models.AirQualityReading{
		reading(3, base),
		reading(2, base.Add(-time.Hour)),
		reading(1, base.Add(-2*time.Hour)),
	}

	dashboard, err := f.svc.Build(context.Background(), f.userID)
	require.NoError(t, err)

	require.Len(t, dashboard.Trend, 3)
	for i := 1; i < len(dashboard.Trend); i++ {
		assert.False(t, dashboard.Trend[i].ObservedAt.Before(dashboard.Trend[i-1].ObservedAt),
			"trend must be non-decreasing by observed_at")
	}
}

func TestBuildFiltersRecommendationsByRiskRank(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()
	trigger := 3
	f.threshold.threshold = &models.Threshold{UserID: f.userID, TriggerAqi: &trigger}
	latest := reading(2, time.Now()) // Medium
	f.readings.latest = &latest
	f.recs.recommendations = []models.Recommendation{
		{Category: "outdoors", MinRiskLevel: models.RiskLow, ConditionType: "any", IsActive: true},
		{Category: "outdoors", MinRiskLevel: models.RiskMedium, ConditionType: "any", IsActive: true},
		{Category: "home", MinRiskLevel: models.RiskHigh, ConditionType: "any", IsActive: true},
		{Category: "medication", MinRiskLevel: models.RiskLow, ConditionType: "asthma", IsActive: true},
		{Category: "outdoors", MinRiskLevel: models.RiskLow, ConditionType: "any", IsActive: false},
	}

	dashboard, err := f.svc.Build(context.Background(), f.userID)
	require.NoError(t, err)

	// User condition is 'both': the asthma-only and High-only rows drop out.
	require.Len(t, dashboard.Recommendations, 2)
	for _, rec := range dashboard.Recommendations {
		assert.LessOrEqual(t, rec.MinRiskLevel.Rank(), models.RiskMedium.Rank())
	}
}

func TestRefreshWithoutLocationSkipsExternalAPI(t *testing.T) {
	f := newDashboardFixture(t)

	_, err := f.svc.Refresh(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrNoLocation)
	assert.Zero(t, f.pollution.calls)
}

func TestRefreshStoresReadingAndRecordsAlert(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()

	record := &weatherapi.PollutionRecord{Dt: time.Now().Unix()}
	record.Main.Aqi = 4
	record.Components.Pm25 = floatPtr(55.2)
	record.Components.O3 = floatPtr(20.1)
	f.pollution.record = record

	dashboard, err := f.svc.Refresh(context.Background(), f.userID)
	require.NoError(t, err)

	require.Len(t, f.readings.created, 1)
	stored := f.readings.created[0]
	assert.Equal(t, "London, GB", stored.AreaLabel)
	assert.Equal(t, 4, stored.Aqi)

	// AQI 4 against the default trigger of 3 records a High alert.
	require.Len(t, f.risks.assessments, 1)
	assert.Equal(t, models.RiskHigh, f.risks.assessments[0].RiskLevel)
	assert.Equal(t, "pm2_5", f.risks.assessments[0].DominantPollutant)

	require.NotNil(t, dashboard.Meta)
	assert.True(t, dashboard.Meta.Refreshed)
	assert.Equal(t, stored.ID, dashboard.Meta.ReadingID)
}

func TestRefreshLowRiskRecordsNoAlert(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()

	record := &weatherapi.PollutionRecord{Dt: time.Now().Unix()}
	record.Main.Aqi = 1
	f.pollution.record = record

	_, err := f.svc.Refresh(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Empty(t, f.risks.assessments)
}

func TestRefreshWrapsUpstreamFailure(t *testing.T) {
	f := newDashboardFixture(t)
	f.withLocation()
	f.pollution.err = errors.New("connection refused")

	_, err := f.svc.Refresh(context.Background(), f.userID)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Empty(t, f.readings.created)
}
