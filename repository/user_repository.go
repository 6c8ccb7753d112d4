package repository

import (
	"context"

	"airaware-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, date_of_birth,
	sex_at_birth, gender, nationality, condition_type, sensitivity_level,
	accessibility_mode, analytics_opt_in, accepted_disclaimer_at, created_at, updated_at`

// Create inserts a new user. Returns ErrDuplicate when the email is taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, condition_type, sensitivity_level, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash).Scan(
		&user.ID,
		&user.ConditionType,
		&user.SensitivityLevel,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return translate(err)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdateProfile updates the allow-listed profile columns of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			first_name = $2,
			last_name = $3,
			date_of_birth = $4,
			sex_at_birth = $5,
			gender = $6,
			nationality = $7,
			condition_type = $8,
			sensitivity_level = $9,
			accessibility_mode = $10,
			analytics_opt_in = $11,
			accepted_disclaimer_at = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.SexAtBirth,
		user.Gender,
		user.Nationality,
		user.ConditionType,
		user.SensitivityLevel,
		user.AccessibilityMode,
		user.AnalyticsOptIn,
		user.AcceptedDisclaimerAt,
	).Scan(&user.UpdatedAt)

	return translate(err)
}

// Delete removes a user and, via foreign keys, its dependent rows
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.SexAtBirth,
		&user.Gender,
		&user.Nationality,
		&user.ConditionType,
		&user.SensitivityLevel,
		&user.AccessibilityMode,
		&user.AnalyticsOptIn,
		&user.AcceptedDisclaimerAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}
