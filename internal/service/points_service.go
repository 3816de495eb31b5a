package service

import (
	"mindcare/backend/internal/models"
	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/errors"
)

// PointsService manages the wellness points ledger
type PointsService struct {
	store store.EventStore
}

// NewPointsService creates a points service over the event store
func NewPointsService(st store.EventStore) *PointsService {
	return &PointsService{store: st}
}

// CompleteActivity awards the fixed amount for a self-care activity
func (s *PointsService) CompleteActivity(activity string) (int, error) {
	amount, ok := models.Activities[activity]
	if !ok {
		return 0, errors.NewBadRequestError("UNKNOWN_ACTIVITY",
			"activity must be one of the defined self-care tasks")
	}

	if err := s.store.AddPoints(activity, amount); err != nil {
		return 0, errors.NewStorageWriteError(err)
	}
	return amount, nil
}

// Total sums the ledger; no rows means 0
func (s *PointsService) Total() (int, error) {
	return s.store.TotalPoints()
}
