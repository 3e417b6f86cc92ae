package models

// Feedback is one append-only user reaction to a content item. Rows are never
// updated or deleted outside of a GDPR erasure sweep.
type Feedback struct {
	ID              int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID       string  `gorm:"size:64;index:ix_feedback_content_id" json:"content_id"`
	UserID          string  `gorm:"size:64;index:ix_feedback_user_id" json:"user_id"`
	EventType       string  `gorm:"size:32" json:"event_type"`
	Rating          int     `json:"rating"`
	Comment         string  `gorm:"type:text" json:"comment"`
	Sentiment       string  `gorm:"size:32" json:"sentiment"`
	EngagementScore float64 `json:"engagement_score"`
	WatchTimeMS     int     `json:"watch_time_ms"`
	Reward          float64 `json:"reward"`
	IPAddress       string  `gorm:"size:45" json:"ip_address"`
	Timestamp       float64 `gorm:"index:ix_feedback_timestamp" json:"timestamp"`
}

func (Feedback) TableName() string { return "feedback" }
