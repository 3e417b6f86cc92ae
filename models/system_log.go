package models

// SystemLog is an application log line persisted for operational review.
// Rows referencing a user are removed when that user is erased.
type SystemLog struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string  `gorm:"size:64;index:ix_system_logs_user_id" json:"user_id"`
	Level     string  `gorm:"size:16" json:"level"`
	Component string  `gorm:"size:64" json:"component"`
	Message   string  `gorm:"type:text" json:"message"`
	Timestamp float64 `json:"timestamp"`
}
