package service

import (
	"context"
	"time"

	"airaware-backend/models"
	"airaware-backend/repository"
	"airaware-backend/weatherapi"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicate
	}
	user.ID = uuid.New()
	user.ConditionType = models.ConditionBoth
	user.SensitivityLevel = models.SensitivityMedium
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, exists := f.users[email]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for email, user := range f.users {
		if user.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeLocationRepo struct {
	active  *models.Location
	history []models.Location
}

func (f *fakeLocationRepo) SetHome(_ context.Context, location *models.Location) error {
	location.ID = uuid.New()
	location.IsHome = true
	location.CreatedAt = time.Now()
	f.active = location
	return nil
}

func (f *fakeLocationRepo) GetActive(_ context.Context, _ uuid.UUID) (*models.Location, error) {
	if f.active == nil {
		return nil, repository.ErrNotFound
	}
	return f.active, nil
}

func (f *fakeLocationRepo) Update(_ context.Context, id uuid.UUID, label string, latitude, longitude float64) error {
	if f.active == nil || f.active.ID != id {
		return repository.ErrNotFound
	}
	f.active.Label = label
	f.active.Latitude = latitude
	f.active.Longitude = longitude
	return nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.active == nil || f.active.ID != id {
		return repository.ErrNotFound
	}
	f.active = nil
	return nil
}

func (f *fakeLocationRepo) History(_ context.Context, _ uuid.UUID) ([]models.Location, error) {
	return f.history, nil
}

type fakeThresholdRepo struct {
	threshold *models.Threshold
}

func (f *fakeThresholdRepo) Upsert(_ context.Context, threshold *models.Threshold) error {
	threshold.ID = uuid.New()
	threshold.UpdatedAt = time.Now()
	f.threshold = threshold
	return nil
}

func (f *fakeThresholdRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*models.Threshold, error) {
	if f.threshold == nil {
		return nil, repository.ErrNotFound
	}
	return f.threshold, nil
}

type fakeReadingRepo struct {
	latest  *models.AirQualityReading
	recent  []models.AirQualityReading
	created []*models.AirQualityReading
}

func (f *fakeReadingRepo) Create(_ context.Context, reading *models.AirQualityReading) error {
	reading.ID = uuid.New()
	f.created = append(f.created, reading)
	f.latest = reading
	return nil
}

func (f *fakeReadingRepo) LatestByLabel(_ context.Context, _ string) (*models.AirQualityReading, error) {
	if f.latest == nil {
		return nil, repository.ErrNotFound
	}
	return f.latest, nil
}

func (f *fakeReadingRepo) RecentByLabel(_ context.Context, _ string, limit int) ([]models.AirQualityReading, error) {
	if len(f.recent) > limit {
		return append([]models.AirQualityReading{}, f.recent[:limit]...), nil
	}
	return append([]models.AirQualityReading{}, f.recent...), nil
}

type fakeRiskRepo struct {
	assessments []models.RiskAssessment
}

func (f *fakeRiskRepo) Create(_ context.Context, assessment *models.RiskAssessment) error {
	assessment.ID = uuid.New()
	assessment.CreatedAt = time.Now()
	f.assessments = append([]models.RiskAssessment{*assessment}, f.assessments...)
	return nil
}

func (f *fakeRiskRepo) RecentByUser(_ context.Context, _ uuid.UUID, limit int) ([]models.RiskAssessment, error) {
	if len(f.assessments) > limit {
		return f.assessments[:limit], nil
	}
	return f.assessments, nil
}

type fakeRecRepo struct {
	recommendations []models.Recommendation
}

func (f *fakeRecRepo) ListForRisk(_ context.Context, condition models.ConditionType, maxRank int) ([]models.Recommendation, error) {
	var matched []models.Recommendation
	for _, rec := range f.recommendations {
		if !rec.IsActive {
			continue
		}
		if rec.ConditionType != "any" && rec.ConditionType != string(condition) {
			continue
		}
		if rec.MinRiskLevel.Rank() > maxRank {
			continue
		}
		matched = append(matched, rec)
	}
	return matched, nil
}

type fakeGeocoder struct {
	cityResult    *weatherapi.GeocodeResult
	cityErr       error
	zipResult     *weatherapi.ZipResult
	zipErr        error
	reverseResult *weatherapi.GeocodeResult
	reverseErr    error
}

func (f *fakeGeocoder) GeocodeCity(_ context.Context, _ string) (*weatherapi.GeocodeResult, error) {
	return f.cityResult, f.cityErr
}

func (f *fakeGeocoder) GeocodeZip(_ context.Context, _ string) (*weatherapi.ZipResult, error) {
	return f.zipResult, f.zipErr
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (*weatherapi.GeocodeResult, error) {
	return f.reverseResult, f.reverseErr
}

type fakePollution struct {
	record  *weatherapi.PollutionRecord
	err     error
	history []weatherapi.PollutionRecord
	histErr error
	calls   int
}

func (f *fakePollution) CurrentAirPollution(_ context.Context, _, _ float64) (*weatherapi.PollutionRecord, error) {
	f.calls++
	return f.record, f.err
}

func (f *fakePollution) AirPollutionHistory(_ context.Context, _, _ float64, _, _ int64) ([]weatherapi.PollutionRecord, error) {
	return f.history, f.histErr
}

func floatPtr(v float64) *float64 {
	return &v
}
