package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/errors"
)

func TestCompleteActivityAwardsFixedAmounts(t *testing.T) {
	svc := NewPointsService(store.NewMemoryStore())

	cases := map[string]int{
		"breathing": 10,
		"grounding": 5,
		"gratitude": 5,
	}
	expected := 0
	for activity, amount := range cases {
		awarded, err := svc.CompleteActivity(activity)
		require.NoError(t, err)
		assert.Equal(t, amount, awarded)
		expected += amount
	}

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, expected, total)
}

func TestCompleteActivityRejectsUnknown(t *testing.T) {
	svc := NewPointsService(store.NewMemoryStore())

	_, err := svc.CompleteActivity("skydiving")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "UNKNOWN_ACTIVITY", appErr.Code)
}

func TestTotalStartsAtZero(t *testing.T) {
	svc := NewPointsService(store.NewMemoryStore())

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
