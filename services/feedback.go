package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/videoforge/backend/models"
	"github.com/videoforge/backend/utils"
)

// ErrRatingOutOfRange rejects ratings outside the 1..5 star scale.
var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// anonymousUserID is recorded on minimal feedback so the row needs no
// authenticated principal.
const anonymousUserID = "anonymous"

// FeedbackService persists lightweight star-rating feedback.
type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// rewardForRating maps a 1..5 star rating onto the -1..+1 reward scale used
// by downstream training: 1 star is -1.0, 3 stars is 0.0, 5 stars is +1.0.
func rewardForRating(rating int) float64 {
	return float64(rating-3) / 2.0
}

// eventTypeForRating classifies 4 and 5 star ratings as a "like" signal and
// everything lower as a plain "view".
func eventTypeForRating(rating int) string {
	if rating >= 4 {
		return "like"
	}
	return "view"
}

// Submit validates the rating, derives the reward and event type, and stores
// one feedback row attributed to the anonymous user.
func (s *FeedbackService) Submit(ctx context.Context, contentID string, rating int, comment string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	row := &models.Feedback{
		ContentID: contentID,
		UserID:    anonymousUserID,
		EventType: eventTypeForRating(rating),
		Rating:    rating,
		Comment:   utils.SanitizePlain(comment),
		Reward:    rewardForRating(rating),
		Timestamp: nowUnix(),
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
