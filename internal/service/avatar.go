package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswap/backend/config"
	"github.com/skillswap/backend/internal/models"
)

// AvatarService stores uploaded avatar images in S3 and points the
// user's profile at the public URL.
type AvatarService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

func NewAvatarService(db *gorm.DB, s3Config *config.S3Config) *AvatarService {
	return &AvatarService{db: db, s3Config: s3Config}
}

// SetAvatar uploads the image and updates the user's avatar URL.
func (s *AvatarService) SetAvatar(ctx context.Context, userID uint, imageData []byte, contentType string) (*models.User, error) {
	key := fmt.Sprintf("avatars/%d-%s%s", userID, uuid.New().String(), extensionFor(contentType))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)

	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar", publicURL)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
