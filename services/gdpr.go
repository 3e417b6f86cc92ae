package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/videoforge/backend/models"
	"github.com/videoforge/backend/storage"
)

// Three-valued outcome of a deletion sweep.
const (
	StatusCompleted          = "completed"
	StatusPartiallyCompleted = "partially_completed"
	StatusFailed             = "failed"
)

const maxFilesPerSegment = 1000

// ExportBundle is the ephemeral aggregate of everything stored for one user.
// DataTypes lists only the kinds for which data was actually found; a kind
// whose fetch failed is logged and omitted rather than aborting the export.
type ExportBundle struct {
	UserID          string                  `json:"user_id"`
	ExportTimestamp float64                 `json:"export_timestamp"`
	DataTypes       []string                `json:"data_types"`
	UserProfile     map[string]any          `json:"user_profile,omitempty"`
	Content         []models.Content        `json:"content,omitempty"`
	Feedback        []models.Feedback       `json:"feedback,omitempty"`
	Scripts         []models.Script         `json:"scripts,omitempty"`
	Analytics       []models.AnalyticsEvent `json:"analytics,omitempty"`
	AuditLogs       []models.AuditLog       `json:"audit_logs,omitempty"`
}

// DeletionResult is the ephemeral record of one erasure attempt. It is never
// persisted beyond the audit entry written for it.
type DeletionResult struct {
	UserID            string   `json:"user_id"`
	DeletionTimestamp float64  `json:"deletion_timestamp"`
	RequestID         string   `json:"request_id"`
	Reason            string   `json:"reason,omitempty"`
	DeletedDataTypes  []string `json:"deleted_data_types"`
	FailedDeletions   []string `json:"failed_deletions"`
	FilesDeleted      []string `json:"files_deleted"`
	Status            string   `json:"status"`
}

// DataSummary reports per-table row counts and per-segment file counts for
// one user. Entries that could not be determined carry the "unknown" sentinel
// instead of failing the summary.
type DataSummary struct {
	UserID          string         `json:"user_id"`
	DataSummary     map[string]any `json:"data_summary"`
	TotalDataPoints int64          `json:"total_data_points"`
}

// GDPRManager orchestrates data export, erasure, and summary across the
// database gateway, the object storage adapter, and the audit sink. All
// collaborators are injected so tests can substitute fakes.
type GDPRManager struct {
	gateway Gateway
	storage storage.ObjectStorage
	audit   AuditLogger
	log     *zap.SugaredLogger

	// fixed sweep order; overridable only from tests in this package
	targets  []TablePair
	segments []string
}

// NewGDPRManager wires the manager with its collaborators.
func NewGDPRManager(gw Gateway, store storage.ObjectStorage, audit AuditLogger, log *zap.SugaredLogger) *GDPRManager {
	return &GDPRManager{
		gateway:  gw,
		storage:  store,
		audit:    audit,
		log:      log,
		targets:  DeletionTargets,
		segments: storage.DeletionSegments,
	}
}

// Export gathers all data kinds stored for the user. Each kind is fetched
// independently: a failing source is logged and omitted so one broken table
// never blocks the rest of the export. One audit record is written per call.
func (m *GDPRManager) Export(ctx context.Context, userID string) *ExportBundle {
	bundle := &ExportBundle{
		UserID:          userID,
		ExportTimestamp: nowUnix(),
		DataTypes:       []string{},
	}

	if user, err := m.gateway.GetUserByID(ctx, userID); err != nil {
		m.log.Errorf("failed to export user profile for %s: %v", userID, err)
	} else if user != nil {
		bundle.UserProfile = map[string]any{
			"user_id":        user.UserID,
			"username":       user.Username,
			"email":          user.Email,
			"email_verified": user.EmailVerified,
			"created_at":     float64(user.CreatedAt.Unix()),
			"last_login":     user.LastLogin,
			"role":           user.Role,
		}
		bundle.DataTypes = append(bundle.DataTypes, "user_profile")
	}

	if rows, err := m.gateway.ContentByUploader(ctx, userID); err != nil {
		m.log.Errorf("failed to export content for %s: %v", userID, err)
	} else if len(rows) > 0 {
		bundle.Content = rows
		bundle.DataTypes = append(bundle.DataTypes, "content")
	}

	if rows, err := m.gateway.FeedbackByUser(ctx, userID); err != nil {
		m.log.Errorf("failed to export feedback for %s: %v", userID, err)
	} else if len(rows) > 0 {
		bundle.Feedback = rows
		bundle.DataTypes = append(bundle.DataTypes, "feedback")
	}

	if rows, err := m.gateway.ScriptsByUser(ctx, userID); err != nil {
		m.log.Errorf("failed to export scripts for %s: %v", userID, err)
	} else if len(rows) > 0 {
		bundle.Scripts = rows
		bundle.DataTypes = append(bundle.DataTypes, "scripts")
	}

	if rows, err := m.gateway.AnalyticsByUser(ctx, userID); err != nil {
		m.log.Errorf("failed to export analytics for %s: %v", userID, err)
	} else if len(rows) > 0 {
		bundle.Analytics = rows
		bundle.DataTypes = append(bundle.DataTypes, "analytics")
	}

	if rows, err := m.gateway.AuditLogsByUser(ctx, userID); err != nil {
		m.log.Errorf("failed to export audit logs for %s: %v", userID, err)
	} else if len(rows) > 0 {
		bundle.AuditLogs = rows
		bundle.DataTypes = append(bundle.DataTypes, "audit_logs")
	}

	m.audit.LogAction(ctx, AuditEntry{
		UserID:       userID,
		Action:       "data_export",
		ResourceType: "user_data",
		ResourceID:   userID,
		Status:       "completed",
		Details: map[string]any{
			"data_types":       bundle.DataTypes,
			"export_timestamp": bundle.ExportTimestamp,
		},
	})

	return bundle
}

// Delete runs the ordered, best-effort erasure sweep: stored files first,
// then each allow-listed table, then the user row last so foreign keys stay
// resolvable while dependents are removed. Steps are failure-isolated; the
// sweep is deliberately not transactional and partial completion is a
// terminal state. Exactly one audit record is written per attempt.
func (m *GDPRManager) Delete(ctx context.Context, userID, requestID, reason string) *DeletionResult {
	result := &DeletionResult{
		UserID:            userID,
		DeletionTimestamp: nowUnix(),
		RequestID:         requestID,
		Reason:            reason,
		DeletedDataTypes:  []string{},
		FailedDeletions:   []string{},
		FilesDeleted:      []string{},
	}

	m.deleteUserFiles(ctx, userID, result)

	for _, target := range m.targets {
		if !AllowedTarget(target.Table, target.Column) {
			m.log.Errorf("refusing deletion target %s.%s for %s: not allow-listed", target.Table, target.Column, userID)
			result.FailedDeletions = append(result.FailedDeletions,
				fmt.Sprintf("%s: target %s.%s not allow-listed", target.Table, target.Table, target.Column))
			continue
		}
		count, err := m.gateway.DeleteOwnedRows(ctx, target.Table, target.Column, userID)
		if err != nil {
			m.log.Errorf("failed to delete from %s for %s: %v", target.Table, userID, err)
			result.FailedDeletions = append(result.FailedDeletions, fmt.Sprintf("%s: %v", target.Table, err))
			continue
		}
		if count > 0 {
			result.DeletedDataTypes = append(result.DeletedDataTypes, target.Table)
			m.log.Infof("deleted %d records from %s for user %s", count, target.Table, userID)
		}
	}

	// User row goes last to preserve referential integrity during the sweep.
	if deleted, err := m.gateway.DeleteUser(ctx, userID); err != nil {
		m.log.Errorf("failed to delete user profile for %s: %v", userID, err)
		result.FailedDeletions = append(result.FailedDeletions, fmt.Sprintf("user_profile: %v", err))
	} else if deleted {
		result.DeletedDataTypes = append(result.DeletedDataTypes, "user_profile")
	}

	switch {
	case len(result.DeletedDataTypes) == 0:
		result.Status = StatusFailed
	case len(result.FailedDeletions) == 0:
		result.Status = StatusCompleted
	default:
		result.Status = StatusPartiallyCompleted
	}

	m.audit.LogAction(ctx, AuditEntry{
		UserID:       userID,
		Action:       "data_deletion",
		ResourceType: "user_data",
		ResourceID:   userID,
		RequestID:    requestID,
		Status:       result.Status,
		Details: map[string]any{
			"deleted_data_types": result.DeletedDataTypes,
			"failed_deletions":   result.FailedDeletions,
			"files_deleted":      len(result.FilesDeleted),
			"reason":             reason,
		},
	})

	return result
}

// deleteUserFiles sweeps every storage segment for files owned by the user.
// Per-segment failures are recorded and the sweep continues; "files" counts
// as a deleted data type only when at least one file was removed.
func (m *GDPRManager) deleteUserFiles(ctx context.Context, userID string, result *DeletionResult) {
	for _, segment := range m.segments {
		files, err := m.storage.ListFiles(ctx, segment, maxFilesPerSegment)
		if err != nil {
			m.log.Errorf("error listing files in %s for %s: %v", segment, userID, err)
			result.FailedDeletions = append(result.FailedDeletions, fmt.Sprintf("files/%s: %v", segment, err))
			continue
		}
		for _, file := range files {
			if !fileBelongsToUser(file.Filename, userID) {
				continue
			}
			if err := m.storage.DeleteFile(ctx, segment, file.Filename); err != nil {
				m.log.Errorf("error deleting file %s/%s: %v", segment, file.Filename, err)
				result.FailedDeletions = append(result.FailedDeletions, fmt.Sprintf("files/%s: %v", segment, err))
				continue
			}
			result.FilesDeleted = append(result.FilesDeleted, segment+"/"+file.Filename)
			m.log.Infof("deleted file: %s/%s", segment, file.Filename)
		}
	}
	if len(result.FilesDeleted) > 0 {
		result.DeletedDataTypes = append(result.DeletedDataTypes, "files")
	}
}

// Summarize counts stored rows per allow-listed table plus files per storage
// segment. It never fails: any entry that cannot be determined degrades to
// the "unknown" sentinel. TotalDataPoints sums known table counts only.
func (m *GDPRManager) Summarize(ctx context.Context, userID string) *DataSummary {
	summary := &DataSummary{
		UserID:      userID,
		DataSummary: map[string]any{},
	}

	for _, target := range m.targets {
		if !AllowedTarget(target.Table, target.Column) {
			m.log.Errorf("refusing summary target %s.%s: not allow-listed", target.Table, target.Column)
			summary.DataSummary[target.Table] = "unknown"
			continue
		}
		count, err := m.gateway.CountOwnedRows(ctx, target.Table, target.Column, userID)
		if err != nil {
			m.log.Errorf("error counting %s for %s: %v", target.Table, userID, err)
			summary.DataSummary[target.Table] = "unknown"
			continue
		}
		summary.DataSummary[target.Table] = count
		summary.TotalDataPoints += count
	}

	fileCounts := map[string]any{}
	for _, segment := range m.segments {
		files, err := m.storage.ListFiles(ctx, segment, maxFilesPerSegment)
		if err != nil {
			m.log.Errorf("error counting files in %s for %s: %v", segment, userID, err)
			fileCounts[segment] = "unknown"
			continue
		}
		n := 0
		for _, file := range files {
			if fileBelongsToUser(file.Filename, userID) {
				n++
			}
		}
		fileCounts[segment] = n
	}
	summary.DataSummary["files"] = fileCounts

	return summary
}

// fileBelongsToUser matches on the stored naming convention of embedding the
// owner id in the filename. Substring matching can cross-match when one user
// id is a prefix of another; see the open questions in DESIGN.md.
func fileBelongsToUser(filename, userID string) bool {
	return strings.Contains(filename, userID)
}

func nowUnix() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
