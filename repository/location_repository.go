package repository

import (
	"context"

	"airaware-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *pgxpool.Pool
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

// SetHome demotes any existing home row for the user and inserts a new row
// marked home. Both steps run in one transaction so a failure cannot leave
// the user without a home row marked.
func (r *LocationRepository) SetHome(ctx context.Context, location *models.Location) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE locations SET is_home = false WHERE user_id = $1 AND is_home`,
		location.UserID,
	)
	if err != nil {
		return err
	}

	location.IsHome = true
	err = tx.QueryRow(ctx, `
		INSERT INTO locations (user_id, label, latitude, longitude, is_home)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, created_at`,
		location.UserID,
		location.Label,
		location.Latitude,
		location.Longitude,
	).Scan(&location.ID, &location.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetActive returns the user's home row, or the most recently created row
// when no row is marked home. Returns ErrNotFound when the user has none.
func (r *LocationRepository) GetActive(ctx context.Context, userID uuid.UUID) (*models.Location, error) {
	location := &models.Location{}
	query := `
		SELECT id, user_id, label, latitude, longitude, is_home, created_at
		FROM locations
		WHERE user_id = $1
		ORDER BY is_home DESC, created_at DESC
		LIMIT 1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&location.ID,
		&location.UserID,
		&location.Label,
		&location.Latitude,
		&location.Longitude,
		&location.IsHome,
		&location.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return location, nil
}

// Update rewrites label and coordinates of a row in place (id and is_home preserved)
func (r *LocationRepository) Update(ctx context.Context, id uuid.UUID, label string, latitude, longitude float64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locations SET label = $2, latitude = $3, longitude = $4
		WHERE id = $1`,
		id, label, latitude, longitude,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a location row
func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// History returns the user's distinct-by-coordinate rows, keeping the most
// recent row per coordinate pair, newest first.
func (r *LocationRepository) History(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	query := `
		SELECT id, user_id, label, latitude, longitude, is_home, created_at
		FROM (
			SELECT DISTINCT ON (latitude, longitude)
				id, user_id, label, latitude, longitude, is_home, created_at
			FROM locations
			WHERE user_id = $1
			ORDER BY latitude, longitude, created_at DESC
		) distinct_locations
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var location models.Location
		err := rows.Scan(
			&location.ID,
			&location.UserID,
			&location.Label,
			&location.Latitude,
			&location.Longitude,
			&location.IsHome,
			&location.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, rows.Err()
}
