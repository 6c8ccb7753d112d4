package handlers

import (
	"context"
	"sync"

	"airaware-backend/models"
	"airaware-backend/repository"
	"airaware-backend/weatherapi"

	"github.com/google/uuid"
)

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = uuid.New()
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memoryLocationRepo struct {
	active *models.Location
}

func (r *memoryLocationRepo) SetHome(_ context.Context, location *models.Location) error {
	location.ID = uuid.New()
	location.IsHome = true
	r.active = location
	return nil
}

func (r *memoryLocationRepo) GetActive(_ context.Context, _ uuid.UUID) (*models.Location, error) {
	if r.active == nil {
		return nil, repository.ErrNotFound
	}
	return r.active, nil
}

func (r *memoryLocationRepo) Update(_ context.Context, id uuid.UUID, label string, latitude, longitude float64) error {
	if r.active == nil || r.active.ID != id {
		return repository.ErrNotFound
	}
	r.active.Label = label
	r.active.Latitude = latitude
	r.active.Longitude = longitude
	return nil
}

func (r *memoryLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.active == nil || r.active.ID != id {
		return repository.ErrNotFound
	}
	r.active = nil
	return nil
}

func (r *memoryLocationRepo) History(_ context.Context, _ uuid.UUID) ([]models.Location, error) {
	if r.active == nil {
		return []models.Location{}, nil
	}
	return []models.Location{*r.active}, nil
}

type memoryThresholdRepo struct {
	threshold *models.Threshold
}

func (r *memoryThresholdRepo) Upsert(_ context.Context, threshold *models.Threshold) error {
	threshold.ID = uuid.New()
	r.threshold = threshold
	return nil
}

func (r *memoryThresholdRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*models.Threshold, error) {
	if r.threshold == nil {
		return nil, repository.ErrNotFound
	}
	return r.threshold, nil
}

type stubGeocoder struct {
	cityResult *weatherapi.GeocodeResult
	cityErr    error
	zipResult  *weatherapi.ZipResult
	zipErr     error
}

func (g *stubGeocoder) GeocodeCity(_ context.Context, _ string) (*weatherapi.GeocodeResult, error) {
	return g.cityResult, g.cityErr
}

func (g *stubGeocoder) GeocodeZip(_ context.Context, _ string) (*weatherapi.ZipResult, error) {
	return g.zipResult, g.zipErr
}

func (g *stubGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (*weatherapi.GeocodeResult, error) {
	return g.cityResult, g.cityErr
}

type stubAirProvider struct {
	place      *weatherapi.GeocodeResult
	geocodeErr error
	records    []weatherapi.PollutionRecord
	historyErr error
}

func (p *stubAirProvider) GeocodeCity(_ context.Context, _ string) (*weatherapi.GeocodeResult, error) {
	return p.place, p.geocodeErr
}

func (p *stubAirProvider) AirPollutionHistory(_ context.Context, _, _ float64, _, _ int64) ([]weatherapi.PollutionRecord, error) {
	return p.records, p.historyErr
}
