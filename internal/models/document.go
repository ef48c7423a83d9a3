package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded résumé. A row is created once at intake and never
// mutated; the stored file at FilePath outlives a failed analysis so the
// submission stays re-analyzable.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	Filename         string    `gorm:"type:text;uniqueIndex" json:"filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	PageCount        int       `json:"page_count,omitempty"`
	TextSnippet      string    `gorm:"type:text" json:"text_snippet,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}
