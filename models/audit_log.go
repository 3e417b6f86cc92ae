package models

// AuditLog records one privacy-sensitive action: who did what to which
// resource, and how it ended.
type AuditLog struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string  `gorm:"size:64;index:ix_audit_logs_user_id" json:"user_id"`
	Action       string  `gorm:"size:64;not null;index:ix_audit_logs_action" json:"action"`
	ResourceType string  `gorm:"size:64;not null" json:"resource_type"`
	ResourceID   string  `gorm:"size:64;not null" json:"resource_id"`
	Timestamp    float64 `gorm:"not null;index:ix_audit_logs_timestamp" json:"timestamp"`
	IPAddress    string  `gorm:"size:45" json:"ip_address"`
	UserAgent    string  `gorm:"size:512" json:"user_agent"`
	RequestID    string  `gorm:"size:64;index:ix_audit_logs_request_id" json:"request_id"`
	Details      string  `gorm:"type:text" json:"details"`
	Status       string  `gorm:"size:32" json:"status"`
}
