package models

// AnalyticsEvent is one append-mostly usage event attributed to a user.
type AnalyticsEvent struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string  `gorm:"size:64;index:ix_analytics_user_id" json:"user_id"`
	EventType string  `gorm:"size:64" json:"event_type"`
	ContentID string  `gorm:"size:64" json:"content_id"`
	Metadata  string  `gorm:"type:text" json:"metadata"`
	Timestamp float64 `json:"timestamp"`
	IPAddress string  `gorm:"size:45" json:"ip_address"`
}

func (AnalyticsEvent) TableName() string { return "analytics" }
