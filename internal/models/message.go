package models

import "time"

// Message is one entry in the append-only log between two users.
type Message struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Sender     User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	SenderMe   = "me"
	SenderThem = "them"
)

// TaggedMessage is a message as seen by one side of a conversation,
// with the sender expressed relative to that caller.
type TaggedMessage struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Tagged converts the message to the caller-relative view.
func (m *Message) Tagged(callerID uint) TaggedMessage {
	sender := SenderThem
	if m.SenderID == callerID {
		sender = SenderMe
	}
	return TaggedMessage{
		ID:        m.ID,
		Text:      m.Text,
		Sender:    sender,
		Timestamp: m.CreatedAt,
	}
}
