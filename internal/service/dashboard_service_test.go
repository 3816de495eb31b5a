package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
)

func TestSummaryEmptyStore(t *testing.T) {
	svc := NewDashboardService(store.NewMemoryStore(), 30)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.AverageSentiment)
	assert.Equal(t, 0, summary.MessageCount)
	assert.Empty(t, summary.RecentMoods)
	assert.Equal(t, 0, summary.TotalPoints)
}

func TestSummaryAveragesUserMessagesOnly(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewDashboardService(st, 30)

	scores := []float64{0.5, -0.5, 0.3}
	for _, score := range scores {
		require.NoError(t, st.AppendMessage(&models.Message{
			Role:      models.RoleUser,
			Text:      "m",
			Sentiment: score,
		}))
		// Bot rows carry sentiment 0 and must not dilute the average
		require.NoError(t, st.AppendMessage(&models.Message{
			Role: models.RoleBot,
			Text: "r",
		}))
	}

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 3, summary.MessageCount)
	assert.InDelta(t, 0.1, summary.AverageSentiment, 0.0001)
}

func TestSummaryRespectsChatWindow(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewDashboardService(st, 2)

	for _, score := range []float64{-1.0, 0.4, 0.6} {
		require.NoError(t, st.AppendMessage(&models.Message{
			Role:      models.RoleUser,
			Text:      "m",
			Sentiment: score,
		}))
	}

	summary, err := svc.Summary()
	require.NoError(t, err)

	// Only the 2 newest user messages count
	assert.Equal(t, 2, summary.MessageCount)
	assert.InDelta(t, 0.5, summary.AverageSentiment, 0.0001)
}

func TestSummaryCapsRecentMoods(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewDashboardService(st, 30)

	for i := 0; i < 9; i++ {
		require.NoError(t, st.AppendMood(&models.MoodEntry{
			Label: models.MoodNeutral,
			Note:  fmt.Sprintf("note %d", i),
		}))
	}

	summary, err := svc.Summary()
	require.NoError(t, err)

	require.Len(t, summary.RecentMoods, 6)
	assert.Equal(t, "note 3", summary.RecentMoods[0].Note)
	assert.Equal(t, "note 8", summary.RecentMoods[5].Note)
}

func TestSummaryIncludesTotalPoints(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewDashboardService(st, 30)

	require.NoError(t, st.AddPoints("breathing", 10))
	require.NoError(t, st.AddPoints("Log mood", 5))

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 15, summary.TotalPoints)
}
