package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/videoforge/backend/models"
	"github.com/videoforge/backend/utils"
)

// AuditEntry is one action record handed to the audit sink.
type AuditEntry struct {
	UserID       string
	Action       string
	ResourceType string
	ResourceID   string
	RequestID    string
	IPAddress    string
	UserAgent    string
	Status       string
	Details      map[string]any
}

// AuditLogger records privacy-sensitive actions. Implementations must be
// best-effort: an audit failure never fails the operation being audited.
type AuditLogger interface {
	LogAction(ctx context.Context, entry AuditEntry)
}

type dbAuditLogger struct {
	db *gorm.DB
}

// NewAuditLogger returns an AuditLogger persisting to the audit_logs table.
func NewAuditLogger(db *gorm.DB) AuditLogger {
	return &dbAuditLogger{db: db}
}

func (a *dbAuditLogger) LogAction(ctx context.Context, entry AuditEntry) {
	details := ""
	if entry.Details != nil {
		if b, err := json.Marshal(entry.Details); err == nil {
			details = string(b)
		}
	}

	record := models.AuditLog{
		UserID:       entry.UserID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Timestamp:    float64(time.Now().UnixNano()) / 1e9,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
		RequestID:    entry.RequestID,
		Details:      details,
		Status:       entry.Status,
	}

	if err := a.db.WithContext(ctx).Create(&record).Error; err != nil && utils.Sugar != nil {
		utils.Sugar.Errorf("audit log write failed action=%s user=%s err=%v", entry.Action, entry.UserID, err)
	}
}
