package service

import (
	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/errors"
)

// MoodService logs mood entries and keeps the label→score mapping honest
type MoodService struct {
	store store.EventStore
}

// NewMoodService creates a mood service over the event store
func NewMoodService(st store.EventStore) *MoodService {
	return &MoodService{store: st}
}

// LogMood appends a mood entry. The score is always derived from the label;
// callers cannot supply a disagreeing pair. Logging a mood awards points.
func (s *MoodService) LogMood(label, note string) (*models.MoodEntry, error) {
	score, ok := models.MoodScore(label)
	if !ok {
		return nil, errors.NewBadRequestError("INVALID_MOOD_LABEL",
			"mood label must be one of the five defined categories")
	}

	entry := models.MoodEntry{
		Label: label,
		Score: score,
		Note:  note,
	}
	if err := s.store.AppendMood(&entry); err != nil {
		return nil, errors.NewStorageWriteError(err)
	}

	// The points row is best-effort: the mood is already committed and a
	// failed award must not fail the logging action.
	_ = s.store.AddPoints("Log mood", models.MoodLogPoints)

	return &entry, nil
}

// AllMoods returns every mood entry ascending by id, for trend charts
func (s *MoodService) AllMoods() ([]models.MoodEntry, error) {
	return s.store.AllMoods()
}
