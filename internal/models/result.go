package models

import (
	"encoding/json"
	"time"
)

type AnalysisResponse struct {
	ID             string                `json:"id"`
	DocumentID     string                `json:"document_id"`
	JobDescription string                `json:"job_description,omitempty"`
	Result         NormalizedMatchResult `json:"result"`
	Raw            json.RawMessage       `json:"raw,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

type SubmissionResponse struct {
	Resume     *Document         `json:"resume"`
	Prediction *AnalysisResponse `json:"prediction"`
}

// NewAnalysisResponse flattens a persisted Analysis back into the normalized
// shape the presenter consumes.
func NewAnalysisResponse(a *Analysis) *AnalysisResponse {
	return &AnalysisResponse{
		ID:             a.ID.String(),
		DocumentID:     a.DocumentID.String(),
		JobDescription: a.JobDescription,
		Result: NormalizedMatchResult{
			SkillsImplemented: []string(a.SkillsImplemented),
			SkillsToAcquire:   []string(a.SkillsToAcquire),
			MatchScore:        a.MatchScore,
			Audit: AuditTrail{
				ImplementedCount: a.ImplementedCount,
				ToAcquireCount:   a.ToAcquireCount,
				Total:            a.TotalSkills,
				Formula:          a.Formula,
			},
		},
		Raw:       json.RawMessage(a.RawResult),
		CreatedAt: a.CreatedAt,
	}
}
