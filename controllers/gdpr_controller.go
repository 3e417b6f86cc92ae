package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/videoforge/backend/middleware"
	"github.com/videoforge/backend/services"
	"github.com/videoforge/backend/utils"
)

const summaryCacheTTL = 5 * time.Minute

// GDPRService is the subset of the GDPR manager the handlers call. The
// manager satisfies it; tests substitute a fake.
type GDPRService interface {
	Export(ctx context.Context, userID string) *services.ExportBundle
	Delete(ctx context.Context, userID, requestID, reason string) *services.DeletionResult
	Summarize(ctx context.Context, userID string) *services.DataSummary
}

// GDPRController exposes the data subject rights endpoints.
type GDPRController struct {
	svc GDPRService
}

func NewGDPRController(svc GDPRService) *GDPRController {
	return &GDPRController{svc: svc}
}

// ExportData handles GET /gdpr/export-data. It returns the full export
// bundle for the authenticated user as a download-ready JSON document.
func (c *GDPRController) ExportData(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40101, "authentication required")
		return
	}
	bundle := c.svc.Export(ctx.Request.Context(), userID)
	ctx.JSON(http.StatusOK, gin.H{
		"user_data":        bundle,
		"export_timestamp": bundle.ExportTimestamp,
		"data_types":       bundle.DataTypes,
	})
}

type deleteDataRequest struct {
	// confirm_deletion intentionally has no required tag: binding would
	// reject an explicit false, and false must reach the handler to get
	// its own error message.
	ConfirmDeletion bool   `json:"confirm_deletion"`
	Reason          string `json:"reason"`
}

// DeleteData handles DELETE /gdpr/delete-data. Deletion is destructive and
// requires an explicit confirmation flag in the body.
func (c *GDPRController) DeleteData(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40101, "authentication required")
		return
	}

	var req deleteDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request body")
		return
	}
	if !req.ConfirmDeletion {
		utils.Error(ctx, http.StatusBadRequest, 40002, "deletion must be explicitly confirmed")
		return
	}

	requestID := uuid.NewString()
	reason := utils.SanitizePlain(req.Reason)
	result := c.svc.Delete(ctx.Request.Context(), userID, requestID, reason)

	// The summary cache describes data that may just have been erased.
	utils.InvalidateByPrefix(utils.SummaryCachePrefix + userID)

	ctx.JSON(http.StatusOK, gin.H{
		"deleted_data_types": result.DeletedDataTypes,
		"deletion_timestamp": result.DeletionTimestamp,
		"confirmation_id":    result.RequestID,
		"status":             result.Status,
	})
}

// DataSummary handles GET /gdpr/data-summary. Summaries are cheap but
// chatty, so responses are cached per user for a short interval.
func (c *GDPRController) DataSummary(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40101, "authentication required")
		return
	}

	cacheKey := utils.SummaryCachePrefix + userID
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	summary := c.svc.Summarize(ctx.Request.Context(), userID)
	utils.CacheSetJSON(cacheKey, summary, summaryCacheTTL)
	ctx.JSON(http.StatusOK, summary)
}

// PrivacyPolicy handles GET /gdpr/privacy-policy. The payload is static and
// public; it documents what is stored and which endpoints exercise each
// right.
func (c *GDPRController) PrivacyPolicy(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"policy_version":      "1.0",
		"last_updated":        "2025-10-03",
		"data_retention_days": 365,
		"data_types_collected": []string{
			"account profile",
			"uploaded content and scripts",
			"feedback and ratings",
			"usage analytics",
			"audit logs",
		},
		"processing_purposes": []string{
			"providing the video generation service",
			"improving generation quality from feedback",
			"security auditing and abuse prevention",
		},
		"user_rights": []string{
			"right of access",
			"right to erasure",
			"right to data portability",
		},
		"endpoints": gin.H{
			"export":  "/gdpr/export-data",
			"delete":  "/gdpr/delete-data",
			"summary": "/gdpr/data-summary",
		},
		"contact": gin.H{
			"privacy_email": "privacy@videoforge.dev",
			"dpo_email":     "dpo@videoforge.dev",
		},
	})
}
