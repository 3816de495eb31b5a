package models

import "time"

// Message roles
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// MaxMessageLen is the storage bound for message text. Truncation happens at
// the storage boundary, never before classification.
const MaxMessageLen = 2000

// Message is one chat message. Immutable once created: the event store
// appends, never mutates, never deletes outside a bulk reset.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Role      string    `json:"role" gorm:"index"`
	Text      string    `json:"text"`
	Sentiment float64   `json:"sentiment"`
	IsCrisis  bool      `json:"is_crisis"`
	Timestamp time.Time `json:"timestamp"`
}

// TableName keeps the historical table name
func (Message) TableName() string { return "chats" }
