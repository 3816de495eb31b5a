package store

import (
	"time"

	"mindcare/backend/internal/models"

	"gorm.io/gorm"
)

// GormStore is the database-backed event store
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open database handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the chats, moods and points tables
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&models.Message{}, &models.MoodEntry{}, &models.PointsEntry{})
}

func (s *GormStore) AppendMessage(m *models.Message) error {
	m.ID = 0
	m.Text = truncateRunes(m.Text, models.MaxMessageLen)
	m.Timestamp = time.Now().UTC()
	return s.db.Create(m).Error
}

func (s *GormStore) RecentMessages(limit int) ([]models.Message, error) {
	return s.recentMessages(limit, "")
}

func (s *GormStore) RecentUserMessages(limit int) ([]models.Message, error) {
	return s.recentMessages(limit, models.RoleUser)
}

func (s *GormStore) recentMessages(limit int, role string) ([]models.Message, error) {
	if limit <= 0 {
		return []models.Message{}, nil
	}

	q := s.db.Order("id DESC").Limit(limit)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var messages []models.Message
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}

	// Fetched newest-first; display wants oldest-first
	reverse(messages)
	return messages, nil
}

func (s *GormStore) AppendMood(e *models.MoodEntry) error {
	e.ID = 0
	e.Note = truncateRunes(e.Note, models.MaxNoteLen)
	e.Timestamp = time.Now().UTC()
	return s.db.Create(e).Error
}

func (s *GormStore) AllMoods() ([]models.MoodEntry, error) {
	var moods []models.MoodEntry
	err := s.db.Order("id ASC").Find(&moods).Error
	return moods, err
}

func (s *GormStore) AddPoints(reason string, amount int) error {
	entry := models.PointsEntry{
		Reason:    reason,
		Points:    amount,
		Timestamp: time.Now().UTC(),
	}
	return s.db.Create(&entry).Error
}

func (s *GormStore) TotalPoints() (int, error) {
	var total int
	err := s.db.Model(&models.PointsEntry{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}

func (s *GormStore) Reset() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"chats", "moods", "points"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func reverse(messages []models.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
