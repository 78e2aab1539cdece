package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/types"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	// ErrSkillNotFound covers both a missing row and a row owned by
	// someone else; the two are deliberately indistinguishable.
	ErrSkillNotFound = errors.New("skill not found")
)

// SkillService handles skill listings and their ownership rules.
type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// Create adds a listing owned by the caller. All fields are required.
func (s *SkillService) Create(ctx context.Context, userID uint, req *types.CreateSkillRequest) (*models.Skill, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Hours <= 0 {
		return nil, ErrMissingFields
	}

	skill := models.Skill{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Hours:       req.Hours,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// Update applies the supplied subset of fields. The WHERE clause carries
// the ownership check: zero rows affected means not-found-or-unauthorized.
func (s *SkillService) Update(ctx context.Context, userID, skillID uint, req *types.UpdateSkillRequest) (*models.Skill, error) {
	if req.Empty() {
		return nil, ErrNoFields
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Hours != nil {
		updates["hours"] = *req.Hours
	}

	result := s.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ? AND user_id = ?", skillID, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSkillNotFound
	}

	var skill models.Skill
	if err := s.db.WithContext(ctx).First(&skill, skillID).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// Delete removes a listing if the caller owns it.
func (s *SkillService) Delete(ctx context.Context, userID, skillID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", skillID, userID).
		Delete(&models.Skill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

// ListMine returns the caller's own listings.
func (s *SkillService) ListMine(ctx context.Context, userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&skills).Error
	return skills, err
}

// ListAll returns every listing joined with its owner's public profile.
// Filtering happens client-side; there is no pagination at this scale.
func (s *SkillService) ListAll(ctx context.Context) ([]models.SkillListing, error) {
	var skills []models.Skill
	err := s.db.WithContext(ctx).
		Joins("User").
		Order("skills.created_at ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}

	listings := make([]models.SkillListing, len(skills))
	for i, skill := range skills {
		listings[i] = models.SkillListing{Skill: skill, Owner: skill.User.Public()}
	}
	return listings, nil
}

// Get returns one listing with owner info and bumps its view counter.
func (s *SkillService) Get(ctx context.Context, skillID uint) (*models.SkillListing, error) {
	var skill models.Skill
	err := s.db.WithContext(ctx).
		Joins("User").
		First(&skill, "skills.id = ?", skillID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ?", skillID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	skill.Views++

	return &models.SkillListing{Skill: skill, Owner: skill.User.Public()}, nil
}
