package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videoforge/backend/models"
	"github.com/videoforge/backend/services"
	"github.com/videoforge/backend/utils"
)

// feedbackSubmitter is what the handler needs from the feedback service.
type feedbackSubmitter interface {
	Submit(ctx context.Context, contentID string, rating int, comment string) (*models.Feedback, error)
}

// FeedbackController exposes the minimal anonymous feedback endpoint.
type FeedbackController struct {
	svc feedbackSubmitter
}

func NewFeedbackController(svc feedbackSubmitter) *FeedbackController {
	return &FeedbackController{svc: svc}
}

type minimalFeedbackRequest struct {
	ContentID string `json:"content_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// SubmitMinimal handles POST /feedback-minimal. Ratings outside 1..5 are
// rejected before anything is written.
func (c *FeedbackController) SubmitMinimal(ctx *gin.Context) {
	var req minimalFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request body")
		return
	}

	row, err := c.svc.Submit(ctx.Request.Context(), req.ContentID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrRatingOutOfRange) {
			utils.Error(ctx, http.StatusBadRequest, 40003, "rating must be between 1 and 5")
			return
		}
		utils.Sugar.Errorf("failed to save feedback: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to save feedback")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"feedback_id": row.ID,
		"rating":      row.Rating,
		"message":     "Feedback saved",
	})
}
