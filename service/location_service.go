package service

import (
	"context"
	"errors"
	"fmt"

	"airaware-backend/models"
	"airaware-backend/repository"
	"airaware-backend/weatherapi"

	"github.com/google/uuid"
)

// Geocoder is the geocoding surface of the external weather provider
type Geocoder interface {
	GeocodeCity(ctx context.Context, city string) (*weatherapi.GeocodeResult, error)
	GeocodeZip(ctx context.Context, postcode string) (*weatherapi.ZipResult, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*weatherapi.GeocodeResult, error)
}

// LocationRepository is the datastore surface for location rows
type LocationRepository interface {
	SetHome(ctx context.Context, location *models.Location) error
	GetActive(ctx context.Context, userID uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, id uuid.UUID, label string, latitude, longitude float64) error
	Delete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, userID uuid.UUID) ([]models.Location, error)
}

// LocationService resolves and manages user locations
type LocationService struct {
	geocoder     Geocoder
	locationRepo LocationRepository
}

// LocationServiceOption is a functional option for LocationService
type LocationServiceOption func(*LocationService)

// LocationWithGeocoder sets the geocoder
func LocationWithGeocoder(g Geocoder) LocationServiceOption {
	return func(s *LocationService) {
		s.geocoder = g
	}
}

// LocationWithLocationRepository sets the location repository
func LocationWithLocationRepository(repo LocationRepository) LocationServiceOption {
	return func(s *LocationService) {
		s.locationRepo = repo
	}
}

// NewLocationService creates a new location service
func NewLocationService(opts ...LocationServiceOption) *LocationService {
	s := &LocationService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve turns a city or postcode into coordinates and a display label.
// Exactly one of city/postcode must be supplied.
func (s *LocationService) Resolve(ctx context.Context, city, postcode string) (*models.ResolvedLocation, error) {
	if city != "" && postcode != "" {
		return nil, NewValidationError("Provide either a city or a postcode, not both")
	}
	if city == "" && postcode == "" {
		return nil, NewValidationError("A city or postcode is required")
	}

	if city != "" {
		result, err := s.geocoder.GeocodeCity(ctx, city)
		if err != nil {
			return nil, NewValidationError(err.Error())
		}
		return &models.ResolvedLocation{
			Label:     fmt.Sprintf("%s, %s", result.Name, result.Country),
			Latitude:  result.Latitude,
			Longitude: result.Longitude,
		}, nil
	}

	zip, err := s.geocoder.GeocodeZip(ctx, postcode)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	// Reverse-geocode for a human city name; fall back to the postcode label
	// when the reverse lookup fails.
	label := fmt.Sprintf("%s, %s", postcode, zip.Country)
	if reverse, err := s.geocoder.ReverseGeocode(ctx, zip.Latitude, zip.Longitude); err == nil && reverse.Name != "" {
		label = fmt.Sprintf("%s, %s", reverse.Name, reverse.Country)
	}

	return &models.ResolvedLocation{
		Label:     label,
		Latitude:  zip.Latitude,
		Longitude: zip.Longitude,
	}, nil
}

// Set resolves the input and stores it as the user's new home location
func (s *LocationService) Set(ctx context.Context, userID uuid.UUID, city, postcode string) (*models.Location, error) {
	resolved, err := s.Resolve(ctx, city, postcode)
	if err != nil {
		return nil, err
	}

	location := &models.Location{
		UserID:    userID,
		Label:     resolved.Label,
		Latitude:  resolved.Latitude,
		Longitude: resolved.Longitude,
	}
	if err := s.locationRepo.SetHome(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// Update re-resolves the input and rewrites the active location in place
func (s *LocationService) Update(ctx context.Context, userID uuid.UUID, city, postcode string) (*models.Location, error) {
	location, err := s.locationRepo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.Resolve(ctx, city, postcode)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.Update(ctx, location.ID, resolved.Label, resolved.Latitude, resolved.Longitude); err != nil {
		return nil, err
	}

	location.Label = resolved.Label
	location.Latitude = resolved.Latitude
	location.Longitude = resolved.Longitude
	return location, nil
}

// Delete removes the user's active location
func (s *LocationService) Delete(ctx context.Context, userID uuid.UUID) error {
	location, err := s.locationRepo.GetActive(ctx, userID)
	if err != nil {
		return err
	}
	return s.locationRepo.Delete(ctx, location.ID)
}

// Active returns the user's active location
func (s *LocationService) Active(ctx context.Context, userID uuid.UUID) (*models.Location, error) {
	return s.locationRepo.GetActive(ctx, userID)
}

// History returns the user's distinct locations, most recent per coordinate pair
func (s *LocationService) History(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	locations, err := s.locationRepo.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}

// IsNotFound reports whether err means the requested row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
