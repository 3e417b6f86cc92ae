package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoforge/backend/models"
	"github.com/videoforge/backend/services"
)

type stubFeedbackService struct {
	submitCalls int
	lastRating  int
	err         error
}

func (s *stubFeedbackService) Submit(ctx context.Context, contentID string, rating int, comment string) (*models.Feedback, error) {
	s.submitCalls++
	s.lastRating = rating
	if s.err != nil {
		return nil, s.err
	}
	return &models.Feedback{ID: 42, ContentID: contentID, Rating: rating, Comment: comment}, nil
}

func newFeedbackTestRouter(svc feedbackSubmitter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/feedback-minimal", NewFeedbackController(svc).SubmitMinimal)
	return router
}

func postFeedback(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/feedback-minimal", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitMinimalSuccess(t *testing.T) {
	svc := &stubFeedbackService{}
	router := newFeedbackTestRouter(svc)

	w := postFeedback(t, router, `{"content_id": "c1", "rating": 5, "comment": "great"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.submitCalls)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(42), body["feedback_id"])
	assert.Equal(t, float64(5), body["rating"])
	assert.Equal(t, "Feedback saved", body["message"])
}

func TestSubmitMinimalInvalidRating(t *testing.T) {
	svc := &stubFeedbackService{err: services.ErrRatingOutOfRange}
	router := newFeedbackTestRouter(svc)

	w := postFeedback(t, router, `{"content_id": "c1", "rating": 6}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rating must be between 1 and 5")
}

func TestSubmitMinimalMissingFields(t *testing.T) {
	svc := &stubFeedbackService{}
	router := newFeedbackTestRouter(svc)

	w := postFeedback(t, router, `{"comment": "no content id or rating"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.submitCalls)
}

func TestSubmitMinimalStorageFailure(t *testing.T) {
	svc := &stubFeedbackService{err: errors.New("db down")}
	router := newFeedbackTestRouter(svc)

	w := postFeedback(t, router, `{"content_id": "c1", "rating": 3}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
