package repository

import (
	"context"

	"airaware-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ThresholdRepository handles database operations for thresholds
type ThresholdRepository struct {
	db *pgxpool.Pool
}

// NewThresholdRepository creates a new threshold repository
func NewThresholdRepository(db *pgxpool.Pool) *ThresholdRepository {
	return &ThresholdRepository{db: db}
}

// Upsert writes the user's threshold row, replacing any previous one
func (r *ThresholdRepository) Upsert(ctx context.Context, threshold *models.Threshold) error {
	query := `
		INSERT INTO thresholds (user_id, trigger_aqi, use_default)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			trigger_aqi = EXCLUDED.trigger_aqi,
			use_default = EXCLUDED.use_default,
			updated_at = NOW()
		RETURNING id, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		threshold.UserID,
		threshold.TriggerAqi,
		threshold.UseDefault,
	).Scan(&threshold.ID, &threshold.UpdatedAt)

	return translate(err)
}

// GetByUserID retrieves the user's threshold row, ErrNotFound if never set
func (r *ThresholdRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Threshold, error) {
	threshold := &models.Threshold{}
	query := `
		SELECT id, user_id, trigger_aqi, use_default, updated_at
		FROM thresholds
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&threshold.ID,
		&threshold.UserID,
		&threshold.TriggerAqi,
		&threshold.UseDefault,
		&threshold.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return threshold, nil
}
