// Package store is the append-only event log behind the chat and mood
// features. Every append commits synchronously before returning: downstream
// alerting reads the latest row immediately after write, so a silently lost
// crisis event is not acceptable.
package store

import (
	"mindcare/backend/internal/models"
)

// EventStore is the append-only log of chat messages, mood entries and the
// wellness points ledger. Ids are monotonically increasing; timestamps are
// assigned in UTC at append time; text fields are truncated to their storage
// bounds here, at the storage boundary, and nowhere earlier.
type EventStore interface {
	// AppendMessage persists a message, assigning ID and Timestamp
	AppendMessage(m *models.Message) error
	// RecentMessages returns at most limit most-recent messages, re-ordered
	// ascending by id for display
	RecentMessages(limit int) ([]models.Message, error)
	// RecentUserMessages is RecentMessages filtered to the user role
	RecentUserMessages(limit int) ([]models.Message, error)

	// AppendMood persists a mood entry, assigning ID and Timestamp
	AppendMood(e *models.MoodEntry) error
	// AllMoods returns every mood entry, ascending by id
	AllMoods() ([]models.MoodEntry, error)

	// AddPoints appends a ledger row
	AddPoints(reason string, amount int) error
	// TotalPoints sums the ledger; an empty ledger totals 0
	TotalPoints() (int, error)

	// Reset wipes all tables. Bulk operation external to the core contract,
	// exposed for the explicit admin action only.
	Reset() error
}

// truncateRunes bounds a text field without splitting a multi-byte character
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
