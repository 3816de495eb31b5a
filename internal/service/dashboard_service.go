package service

import (
	"math"

	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
)

// DashboardSummary is the snapshot the UI renders on the dashboard tab
type DashboardSummary struct {
	AverageSentiment float64            `json:"average_sentiment"`
	MessageCount     int                `json:"message_count"`
	RecentMoods      []models.MoodEntry `json:"recent_moods"`
	TotalPoints      int                `json:"total_points"`
}

// DashboardService aggregates event store reads into a display snapshot
type DashboardService struct {
	store      store.EventStore
	chatWindow int
}

// NewDashboardService creates a dashboard service. chatWindow bounds how many
// recent user messages feed the average-sentiment figure.
func NewDashboardService(st store.EventStore, chatWindow int) *DashboardService {
	if chatWindow <= 0 {
		chatWindow = 30
	}
	return &DashboardService{store: st, chatWindow: chatWindow}
}

// Summary builds the snapshot
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	messages, err := s.store.RecentUserMessages(s.chatWindow)
	if err != nil {
		return nil, err
	}

	var avg float64
	if len(messages) > 0 {
		var sum float64
		for _, m := range messages {
			sum += m.Sentiment
		}
		avg = math.Round(sum/float64(len(messages))*1000) / 1000
	}

	moods, err := s.store.AllMoods()
	if err != nil {
		return nil, err
	}
	// Last handful is enough for the snapshot table
	if len(moods) > 6 {
		moods = moods[len(moods)-6:]
	}

	total, err := s.store.TotalPoints()
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		AverageSentiment: avg,
		MessageCount:     len(messages),
		RecentMoods:      moods,
		TotalPoints:      total,
	}, nil
}
