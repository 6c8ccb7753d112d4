package service

import (
	"context"
	"fmt"
	"time"

	"airaware-backend/models"

	"github.com/google/uuid"
)

// UserService handles profile reads and updates
type UserService struct {
	userRepo UserRepository
}

// UserServiceOption is a functional option for UserService
type UserServiceOption func(*UserService)

// UserWithUserRepository sets the user repository
func UserWithUserRepository(repo UserRepository) UserServiceOption {
	return func(s *UserService) {
		s.userRepo = repo
	}
}

// NewUserService creates a new user service
func NewUserService(opts ...UserServiceOption) *UserService {
	s := &UserService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the user's profile
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfileRequest carries the allow-listed profile fields. Nil fields
// are left untouched; anything outside this struct is ignored by design of
// the PATCH endpoint.
type UpdateProfileRequest struct {
	FirstName          *string `json:"first_name"`
	LastName           *string `json:"last_name"`
	DateOfBirth        *string `json:"date_of_birth"` // YYYY-MM-DD
	SexAtBirth         *string `json:"sex_at_birth"`
	Gender             *string `json:"gender"`
	Nationality        *string `json:"nationality"`
	ConditionType      *string `json:"condition_type"`
	SensitivityLevel   *string `json:"sensitivity_level"`
	AccessibilityMode  *bool   `json:"accessibility_mode"`
	AnalyticsOptIn     *bool   `json:"analytics_opt_in"`
	AcceptedDisclaimer *bool   `json:"accepted_disclaimer"`
}

// UpdateProfile applies the allow-listed fields to the stored profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, NewValidationError("date_of_birth must be YYYY-MM-DD")
		}
		user.DateOfBirth = &dob
	}
	if req.SexAtBirth != nil {
		user.SexAtBirth = req.SexAtBirth
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Nationality != nil {
		user.Nationality = req.Nationality
	}
	if req.ConditionType != nil {
		if !models.ValidConditionType(*req.ConditionType) {
			return nil, NewValidationError(fmt.Sprintf("condition_type must be one of: %s, %s, %s",
				models.ConditionAsthma, models.ConditionAllergies, models.ConditionBoth))
		}
		user.ConditionType = models.ConditionType(*req.ConditionType)
	}
	if req.SensitivityLevel != nil {
		if !models.ValidSensitivityLevel(*req.SensitivityLevel) {
			return nil, NewValidationError(fmt.Sprintf("sensitivity_level must be one of: %s, %s, %s",
				models.SensitivityLow, models.SensitivityMedium, models.SensitivityHigh))
		}
		user.SensitivityLevel = models.SensitivityLevel(*req.SensitivityLevel)
	}
	if req.AccessibilityMode != nil {
		user.AccessibilityMode = *req.AccessibilityMode
	}
	if req.AnalyticsOptIn != nil {
		user.AnalyticsOptIn = *req.AnalyticsOptIn
	}
	if req.AcceptedDisclaimer != nil && *req.AcceptedDisclaimer && user.AcceptedDisclaimerAt == nil {
		now := time.Now()
		user.AcceptedDisclaimerAt = &now
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.Delete(ctx, userID)
}
