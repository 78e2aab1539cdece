package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/types"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrNoFields            = errors.New("no fields to update")
)

// UserService handles profile reads/updates and the credit ledger.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get loads a user by id.
func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the supplied subset of profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*models.User, error) {
	if req.Empty() {
		return nil, ErrNoFields
	}

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.Get(ctx, userID)
}

// AddCredits increases the balance by amount as a single update
// expression; there is no upper bound.
func (s *UserService) AddCredits(ctx context.Context, userID uint, amount int) (*models.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("time_credits", gorm.Expr("time_credits + ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.Get(ctx, userID)
}

// SpendCredits decreases the balance by amount. The balance guard lives
// in the WHERE clause so concurrent spends can never drive it negative;
// a spend that would is rejected whole, never clamped.
func (s *UserService) SpendCredits(ctx context.Context, userID uint, amount int) (*models.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND time_credits >= ?", userID, amount).
		UpdateColumn("time_credits", gorm.Expr("time_credits - ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Either the user is gone or the balance is short.
		if _, err := s.Get(ctx, userID); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientCredits
	}

	return s.Get(ctx, userID)
}
