package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/models"
)

var ErrEmptyText = errors.New("message text is required")

// MessageService handles the append-only message log. Conversations are
// derived views over it, never stored.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// Send appends one message from the caller to the other user.
func (s *MessageService) Send(ctx context.Context, callerID, otherID uint, text string) (*models.TaggedMessage, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	var receiver models.User
	if err := s.db.WithContext(ctx).First(&receiver, otherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	msg := models.Message{
		SenderID:   callerID,
		ReceiverID: otherID,
		Text:       text,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}

	tagged := msg.Tagged(callerID)
	return &tagged, nil
}

// ListWith returns the ordered conversation between the caller and the
// other user, tagged relative to the caller.
func (s *MessageService) ListWith(ctx context.Context, callerID, otherID uint) ([]models.TaggedMessage, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			callerID, otherID, otherID, callerID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	tagged := make([]models.TaggedMessage, len(msgs))
	for i, m := range msgs {
		tagged[i] = m.Tagged(callerID)
	}
	return tagged, nil
}

// ListConversations returns every conversation the caller is part of,
// keyed by the other party's id. One query over the caller's messages,
// grouped here, so partner count does not multiply round trips.
func (s *MessageService) ListConversations(ctx context.Context, callerID uint) (map[uint][]models.TaggedMessage, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", callerID, callerID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	conversations := make(map[uint][]models.TaggedMessage)
	for _, m := range msgs {
		partner := m.SenderID
		if partner == callerID {
			partner = m.ReceiverID
		}
		conversations[partner] = append(conversations[partner], m.Tagged(callerID))
	}
	return conversations, nil
}
