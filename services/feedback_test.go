package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	// nil db is safe here: the range check runs before any query
	svc := NewFeedbackService(nil)
	for _, rating := range []int{-1, 0, 6, 100} {
		row, err := svc.Submit(context.Background(), "c1", rating, "")
		assert.ErrorIs(t, err, ErrRatingOutOfRange, "rating %d", rating)
		assert.Nil(t, row)
	}
}

func TestRewardForRating(t *testing.T) {
	assert.Equal(t, -1.0, rewardForRating(1))
	assert.Equal(t, -0.5, rewardForRating(2))
	assert.Equal(t, 0.0, rewardForRating(3))
	assert.Equal(t, 0.5, rewardForRating(4))
	assert.Equal(t, 1.0, rewardForRating(5))
}

func TestEventTypeForRating(t *testing.T) {
	assert.Equal(t, "view", eventTypeForRating(1))
	assert.Equal(t, "view", eventTypeForRating(3))
	assert.Equal(t, "like", eventTypeForRating(4))
	assert.Equal(t, "like", eventTypeForRating(5))
}
