package store

import (
	"sync"
	"time"

	"mindcare/backend/internal/models"
)

// MemoryStore is an in-memory EventStore used by tests and as a stand-in when
// no database is configured. Mutex-guarded to honor per-append atomicity.
type MemoryStore struct {
	mu       sync.Mutex
	messages []models.Message
	moods    []models.MoodEntry
	ledger   []models.PointsEntry
	nextID   map[string]uint
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: map[string]uint{"chats": 1, "moods": 1, "points": 1},
	}
}

func (s *MemoryStore) AppendMessage(m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID["chats"]
	s.nextID["chats"]++
	m.Text = truncateRunes(m.Text, models.MaxMessageLen)
	m.Timestamp = time.Now().UTC()
	s.messages = append(s.messages, *m)
	return nil
}

func (s *MemoryStore) RecentMessages(limit int) ([]models.Message, error) {
	return s.recent(limit, "")
}

func (s *MemoryStore) RecentUserMessages(limit int) ([]models.Message, error) {
	return s.recent(limit, models.RoleUser)
}

func (s *MemoryStore) recent(limit int, role string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return []models.Message{}, nil
	}

	var filtered []models.Message
	for _, m := range s.messages {
		if role == "" || m.Role == role {
			filtered = append(filtered, m)
		}
	}

	if len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	out := make([]models.Message, len(filtered))
	copy(out, filtered)
	return out, nil
}

func (s *MemoryStore) AppendMood(e *models.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID["moods"]
	s.nextID["moods"]++
	e.Note = truncateRunes(e.Note, models.MaxNoteLen)
	e.Timestamp = time.Now().UTC()
	s.moods = append(s.moods, *e)
	return nil
}

func (s *MemoryStore) AllMoods() ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MoodEntry, len(s.moods))
	copy(out, s.moods)
	return out, nil
}

func (s *MemoryStore) AddPoints(reason string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = append(s.ledger, models.PointsEntry{
		ID:        s.nextID["points"],
		Reason:    reason,
		Points:    amount,
		Timestamp: time.Now().UTC(),
	})
	s.nextID["points"]++
	return nil
}

func (s *MemoryStore) TotalPoints() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, entry := range s.ledger {
		total += entry.Points
	}
	return total, nil
}

func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	s.moods = nil
	s.ledger = nil
	return nil
}
