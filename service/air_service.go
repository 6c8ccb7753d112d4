package service

import (
	"context"
	"time"

	"airaware-backend/models"
	"airaware-backend/weatherapi"
)

// Air trends window bounds, in hours
const (
	minTrendHours = 1
	maxTrendHours = 120
)

// AirProvider is the external surface the public trends endpoint needs
type AirProvider interface {
	GeocodeCity(ctx context.Context, city string) (*weatherapi.GeocodeResult, error)
	AirPollutionHistory(ctx context.Context, lat, lon float64, start, end int64) ([]weatherapi.PollutionRecord, error)
}

// AirService proxies geocoding plus pollution history for the public trends endpoint
type AirService struct {
	provider AirProvider
}

// AirServiceOption is a functional option for AirService
type AirServiceOption func(*AirService)

// AirWithProvider sets the external provider
func AirWithProvider(provider AirProvider) AirServiceOption {
	return func(s *AirService) {
		s.provider = provider
	}
}

// NewAirService creates a new air service
func NewAirService(opts ...AirServiceOption) *AirService {
	s := &AirService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trends geocodes the city and normalizes its pollution history over the
// last hours. Returns weatherapi.ErrCityNotFound when geocoding has no match
// and UpstreamError when the history call itself fails.
func (s *AirService) Trends(ctx context.Context, city string, hours int) ([]models.TrendPoint, error) {
	if city == "" {
		return nil, NewValidationError("A city is required")
	}
	if hours < minTrendHours || hours > maxTrendHours {
		return nil, NewValidationError("hours must be between 1 and 120")
	}

	place, err := s.provider.GeocodeCity(ctx, city)
	if err != nil {
		return nil, err
	}

	end := time.Now().Unix()
	start := end - int64(hours)*3600
	records, err := s.provider.AirPollutionHistory(ctx, place.Latitude, place.Longitude, start, end)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	points := make([]models.TrendPoint, 0, len(records))
	for _, record := range records {
		points = append(points, models.TrendPoint{
			Ts:   record.Dt * 1000,
			Aqi:  record.Main.Aqi,
			Pm25: record.Components.Pm25,
			Pm10: record.Components.Pm10,
			No2:  record.Components.No2,
			O3:   record.Components.O3,
			So2:  record.Components.So2,
			Co:   record.Components.Co,
		})
	}
	return points, nil
}
