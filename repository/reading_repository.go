package repository

import (
	"context"

	"airaware-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReadingRepository handles database operations for air-quality readings
type ReadingRepository struct {
	db *pgxpool.Pool
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(db *pgxpool.Pool) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Create stores a reading for an area label
func (r *ReadingRepository) Create(ctx context.Context, reading *models.AirQualityReading) error {
	query := `
		INSERT INTO air_quality_readings (
			area_label, observed_at, aqi, pm25, pm10, no2, o3, so2, co
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.db.QueryRow(
		ctx, query,
		reading.AreaLabel,
		reading.ObservedAt,
		reading.Aqi,
		reading.Pm25,
		reading.Pm10,
		reading.No2,
		reading.O3,
		reading.So2,
		reading.Co,
	).Scan(&reading.ID)

	return translate(err)
}

// LatestByLabel returns the newest reading for an area label
func (r *ReadingRepository) LatestByLabel(ctx context.Context, areaLabel string) (*models.AirQualityReading, error) {
	query := readingColumnsQuery + `
		WHERE area_label = $1
		ORDER BY observed_at DESC
		LIMIT 1`

	reading := &models.AirQualityReading{}
	err := scanReading(r.db.QueryRow(ctx, query, areaLabel), reading)
	if err != nil {
		return nil, err
	}
	return reading, nil
}

// RecentByLabel returns up to limit readings for an area label, newest first
func (r *ReadingRepository) RecentByLabel(ctx context.Context, areaLabel string, limit int) ([]models.AirQualityReading, error) {
	query := readingColumnsQuery + `
		WHERE area_label = $1
		ORDER BY observed_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, areaLabel, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []models.AirQualityReading
	for rows.Next() {
		var reading models.AirQualityReading
		if err := scanReading(rows, &reading); err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

const readingColumnsQuery = `
	SELECT id, area_label, observed_at, aqi, pm25, pm10, no2, o3, so2, co
	FROM air_quality_readings`

func scanReading(row rowScanner, reading *models.AirQualityReading) error {
	err := row.Scan(
		&reading.ID,
		&reading.AreaLabel,
		&reading.ObservedAt,
		&reading.Aqi,
		&reading.Pm25,
		&reading.Pm10,
		&reading.No2,
		&reading.O3,
		&reading.So2,
		&reading.Co,
	)
	return translate(err)
}
