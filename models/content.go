package models

// Content is an uploaded media item owned by a user via UploaderID.
type Content struct {
	ContentID         string  `gorm:"primaryKey;size:64" json:"content_id"`
	UploaderID        string  `gorm:"size:64;index:ix_content_uploader_id" json:"uploader_id"`
	Title             string  `gorm:"size:255" json:"title"`
	Description       string  `gorm:"type:text" json:"description"`
	FilePath          string  `gorm:"size:1024" json:"file_path"`
	ContentType       string  `gorm:"size:64" json:"content_type"`
	UploadedAt        float64 `gorm:"index:ix_content_uploaded_at" json:"uploaded_at"`
	AuthenticityScore float64 `json:"authenticity_score"`
	CurrentTags       string  `gorm:"type:text" json:"current_tags"`
	DurationMS        int     `json:"duration_ms"`
	Views             int     `gorm:"default:0" json:"views"`
	Likes             int     `gorm:"default:0" json:"likes"`
	Shares            int     `gorm:"default:0" json:"shares"`
	Status            string  `gorm:"size:32;default:'active'" json:"status"`
}

// TableName keeps the historical singular table name.
func (Content) TableName() string { return "content" }
