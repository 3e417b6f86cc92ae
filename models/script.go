package models

// Script is a generation script authored by a user, optionally tied to a
// content item.
type Script struct {
	ScriptID          string  `gorm:"primaryKey;size:64" json:"script_id"`
	ContentID         string  `gorm:"size:64;index:ix_scripts_content_id" json:"content_id"`
	UserID            string  `gorm:"size:64;index:ix_scripts_user_id" json:"user_id"`
	Title             string  `gorm:"size:255;not null" json:"title"`
	ScriptContent     string  `gorm:"type:text;not null" json:"script_content"`
	ScriptType        string  `gorm:"size:32" json:"script_type"`
	FilePath          string  `gorm:"size:1024" json:"file_path"`
	CreatedAt         float64 `gorm:"index:ix_scripts_created_at" json:"created_at"`
	UsedForGeneration bool    `gorm:"default:false" json:"used_for_generation"`
	Version           string  `gorm:"size:32" json:"version"`
	ScriptMetadata    string  `gorm:"type:text" json:"script_metadata"`
}
