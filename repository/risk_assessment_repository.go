package repository

import (
	"context"

	"airaware-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RiskAssessmentRepository handles database operations for risk assessments
type RiskAssessmentRepository struct {
	db *pgxpool.Pool
}

// NewRiskAssessmentRepository creates a new risk assessment repository
func NewRiskAssessmentRepository(db *pgxpool.Pool) *RiskAssessmentRepository {
	return &RiskAssessmentRepository{db: db}
}

// Create records an alert for a user
func (r *RiskAssessmentRepository) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	query := `
		INSERT INTO risk_assessments (user_id, risk_level, dominant_pollutant, explanation)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		assessment.UserID,
		assessment.RiskLevel,
		assessment.DominantPollutant,
		assessment.Explanation,
	).Scan(&assessment.ID, &assessment.CreatedAt)

	return translate(err)
}

// RecentByUser returns up to limit alerts for a user, newest first
func (r *RiskAssessmentRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.RiskAssessment, error) {
	query := `
		SELECT id, user_id, risk_level, dominant_pollutant, explanation, created_at
		FROM risk_assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []models.RiskAssessment
	for rows.Next() {
		var assessment models.RiskAssessment
		err := rows.Scan(
			&assessment.ID,
			&assessment.UserID,
			&assessment.RiskLevel,
			&assessment.DominantPollutant,
			&assessment.Explanation,
			&assessment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	return assessments, rows.Err()
}
