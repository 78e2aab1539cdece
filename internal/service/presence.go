package service

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/models"
)

const onlineSetKey = "presence:online_users"

// PresenceService tracks who is online. The store is the source of
// truth; redis mirrors the online set so the count is cheap to read.
// A nil redis client disables the mirror.
type PresenceService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewPresenceService(db *gorm.DB, redisClient *redis.Client) *PresenceService {
	return &PresenceService{db: db, redis: redisClient}
}

// SetOnline marks the user online and stamps last_seen.
func (s *PresenceService) SetOnline(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_online": true,
			"last_seen": time.Now(),
		}).Error
	if err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.redis.SAdd(ctx, onlineSetKey, userID).Err(); err != nil {
			log.Printf("presence: failed to mirror online state for user %d: %v", userID, err)
		}
	}
	return nil
}

// SetOffline marks the user offline and stamps last_seen.
func (s *PresenceService) SetOffline(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_online": false,
			"last_seen": time.Now(),
		}).Error
	if err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.redis.SRem(ctx, onlineSetKey, userID).Err(); err != nil {
			log.Printf("presence: failed to mirror offline state for user %d: %v", userID, err)
		}
	}
	return nil
}

// OnlineCount returns the number of users currently online, preferring
// the redis mirror and falling back to the store.
func (s *PresenceService) OnlineCount(ctx context.Context) (int64, error) {
	if s.redis != nil {
		count, err := s.redis.SCard(ctx, onlineSetKey).Result()
		if err == nil {
			return count, nil
		}
		log.Printf("presence: redis count failed, falling back to store: %v", err)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("is_online = ?", true).
		Count(&count).Error
	return count, err
}
