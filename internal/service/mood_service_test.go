package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/errors"
)

func TestLogMoodDerivesScoreFromLabel(t *testing.T) {
	svc := NewMoodService(store.NewMemoryStore())

	cases := map[string]int{
		models.MoodVeryPositive: 2,
		models.MoodPositive:     1,
		models.MoodNeutral:      0,
		models.MoodAnxious:      -1,
		models.MoodVeryNegative: -2,
	}
	for label, score := range cases {
		entry, err := svc.LogMood(label, "")
		require.NoError(t, err)
		assert.Equal(t, label, entry.Label)
		assert.Equal(t, score, entry.Score)
	}
}

func TestLogMoodRejectsUnknownLabel(t *testing.T) {
	svc := NewMoodService(store.NewMemoryStore())

	_, err := svc.LogMood("Ecstatic", "")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "INVALID_MOOD_LABEL", appErr.Code)
}

func TestLogMoodAwardsPoints(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMoodService(st)

	_, err := svc.LogMood(models.MoodPositive, "slept well")
	require.NoError(t, err)

	total, err := st.TotalPoints()
	require.NoError(t, err)
	assert.Equal(t, models.MoodLogPoints, total)
}

func TestAllMoodsReturnsEntriesInOrder(t *testing.T) {
	svc := NewMoodService(store.NewMemoryStore())

	_, err := svc.LogMood(models.MoodNeutral, "first")
	require.NoError(t, err)
	_, err = svc.LogMood(models.MoodAnxious, "second")
	require.NoError(t, err)

	moods, err := svc.AllMoods()
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "first", moods[0].Note)
	assert.Equal(t, "second", moods[1].Note)
}
