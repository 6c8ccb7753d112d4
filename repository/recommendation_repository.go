package repository

import (
	"context"

	"airaware-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RecommendationRepository handles database operations for recommendations
type RecommendationRepository struct {
	db *pgxpool.Pool
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// ListForRisk returns active recommendations matching the user's condition
// (or 'any') whose minimum risk rank does not exceed maxRank, ordered by category
func (r *RecommendationRepository) ListForRisk(ctx context.Context, condition models.ConditionType, maxRank int) ([]models.Recommendation, error) {
	query := `
		SELECT id, category, text, min_risk_level, condition_type, is_active
		FROM recommendations
		WHERE is_active
		  AND (condition_type = $1 OR condition_type = 'any')
		  AND CASE min_risk_level
				WHEN 'Low' THEN 1
				WHEN 'Medium' THEN 2
				ELSE 3
			END <= $2
		ORDER BY category`

	rows, err := r.db.Query(ctx, query, condition, maxRank)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recommendations []models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		err := rows.Scan(
			&rec.ID,
			&rec.Category,
			&rec.Text,
			&rec.MinRiskLevel,
			&rec.ConditionType,
			&rec.IsActive,
		)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, rows.Err()
}
