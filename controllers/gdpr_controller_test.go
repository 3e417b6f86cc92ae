package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoforge/backend/config"
	"github.com/videoforge/backend/middleware"
	"github.com/videoforge/backend/services"
)

func TestMain(m *testing.M) {
	// Redis helpers load config lazily; give them one that cannot fatal
	// and points at a closed port so cache calls fail fast.
	config.SetForTesting(config.AppConfig{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		RedisHost: "127.0.0.1",
		RedisPort: 1,
	})
	os.Exit(m.Run())
}

type stubGDPRService struct {
	exportCalls  int
	deleteCalls  int
	summaryCalls int
	lastReason   string
	lastUserID   string
}

func (s *stubGDPRService) Export(ctx context.Context, userID string) *services.ExportBundle {
	s.exportCalls++
	s.lastUserID = userID
	return &services.ExportBundle{UserID: userID, DataTypes: []string{"user_profile"}}
}

func (s *stubGDPRService) Delete(ctx context.Context, userID, requestID, reason string) *services.DeletionResult {
	s.deleteCalls++
	s.lastUserID = userID
	s.lastReason = reason
	return &services.DeletionResult{
		UserID:           userID,
		RequestID:        requestID,
		DeletedDataTypes: []string{"feedback", "user_profile"},
		FailedDeletions:  []string{},
		FilesDeleted:     []string{},
		Status:           services.StatusCompleted,
	}
}

func (s *stubGDPRService) Summarize(ctx context.Context, userID string) *services.DataSummary {
	s.summaryCalls++
	return &services.DataSummary{
		UserID:          userID,
		DataSummary:     map[string]any{"feedback": int64(2)},
		TotalDataPoints: 2,
	}
}

// authAs injects the user id the way AuthRequired would after token parsing.
func authAs(userID string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextUserIDKey, userID)
	}
}

func newGDPRTestRouter(svc GDPRService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewGDPRController(svc)
	group := router.Group("/gdpr")
	if userID != "" {
		group.Use(authAs(userID))
	}
	group.GET("/export-data", ctrl.ExportData)
	group.DELETE("/delete-data", ctrl.DeleteData)
	group.GET("/data-summary", ctrl.DataSummary)
	group.GET("/privacy-policy", ctrl.PrivacyPolicy)
	return router
}

func TestExportDataReturnsBundle(t *testing.T) {
	svc := &stubGDPRService{}
	router := newGDPRTestRouter(svc, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gdpr/export-data", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.exportCalls)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []any{"user_profile"}, body["data_types"])
	userData, ok := body["user_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1", userData["user_id"])
}

func TestExportDataWithoutAuthContext(t *testing.T) {
	svc := &stubGDPRService{}
	router := newGDPRTestRouter(svc, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gdpr/export-data", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.exportCalls)
}

func TestDeleteDataRequiresConfirmation(t *testing.T) {
	svc := &stubGDPRService{}
	router := newGDPRTestRouter(svc, "u1")

	for _, payload := range []string{
		`{"confirm_deletion": false}`,
		`{"reason": "no flag at all"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/gdpr/delete-data", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "payload: %s", payload)
	}
	assert.Zero(t, svc.deleteCalls)
}

func TestDeleteDataConfirmed(t *testing.T) {
	svc := &stubGDPRService{}
	router := newGDPRTestRouter(svc, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/gdpr/delete-data",
		strings.NewReader(`{"confirm_deletion": true, "reason": "leaving"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.deleteCalls)
	assert.Equal(t, "leaving", svc.lastReason)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, services.StatusCompleted, body["status"])
	assert.NotEmpty(t, body["confirmation_id"])
	assert.Contains(t, body, "deleted_data_types")
}

func TestDataSummaryReturnsCounts(t *testing.T) {
	svc := &stubGDPRService{}
	router := newGDPRTestRouter(svc, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gdpr/data-summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.summaryCalls)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["total_data_points"])
}

func TestPrivacyPolicyIsPublic(t *testing.T) {
	router := newGDPRTestRouter(&stubGDPRService{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gdpr/privacy-policy", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1.0", body["policy_version"])
	assert.Contains(t, body, "user_rights")
	assert.Contains(t, body, "endpoints")
}
