package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Analysis links one uploaded document to the engine's raw response and the
// normalized match computed from it. Rows are written once by the pipeline
// and never updated, so a row that exists is always complete.
type Analysis struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_analyses_user_created" json:"user_id"`
	DocumentID     uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	JobDescription string    `gorm:"type:text" json:"job_description,omitempty"`

	// RawResult is the engine payload verbatim, kept for display and audit.
	RawResult datatypes.JSON `gorm:"type:jsonb" json:"raw_result"`

	MatchScore        float64                     `json:"match_score"`
	SkillsImplemented datatypes.JSONSlice[string] `json:"skills_implemented"`
	SkillsToAcquire   datatypes.JSONSlice[string] `json:"skills_to_acquire"`
	ImplementedCount  int                         `json:"implemented_count"`
	ToAcquireCount    int                         `json:"to_acquire_count"`
	TotalSkills       int                         `json:"total_skills"`
	Formula           string                      `gorm:"type:text" json:"formula"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_analyses_user_created" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Document Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// NormalizedMatchResult is the deterministic view derived from a raw engine
// payload. The score is always recomputed from the two skill lists; it is
// never copied from an engine-reported score field.
type NormalizedMatchResult struct {
	SkillsImplemented []string   `json:"skills_implemented"`
	SkillsToAcquire   []string   `json:"skills_to_acquire"`
	MatchScore        float64    `json:"match_score"`
	Audit             AuditTrail `json:"audit"`
}

// AuditTrail preserves the exact formula inputs so the displayed score can be
// reproduced from the displayed lists.
type AuditTrail struct {
	ImplementedCount int    `json:"implemented_count"`
	ToAcquireCount   int    `json:"to_acquire_count"`
	Total            int    `json:"total"`
	Formula          string `json:"formula"`
}
