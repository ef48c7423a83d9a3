package services

import (
	"resumatch/resume-match/internal/models"
)

const matchFormula = "(implemented / total) * 100"

// MatchNormalizer reduces whatever the engine returned to one canonical match
// result. It is total: a missing or half-empty payload yields empty skill
// lists and a zero score, never an error, so a flaky engine only lowers the
// reported score.
type MatchNormalizer interface {
	Normalize(raw *models.RawAnalysisResult, jobDescription string) models.NormalizedMatchResult
}

type matchNormalizer struct{}

func NewMatchNormalizer() MatchNormalizer {
	return &matchNormalizer{}
}

// Normalize computes the match score from skill-set cardinalities. The engine
// also reports its own score fields, but those can disagree with the skill
// lists it returns; recomputing from the lists keeps the number on screen
// consistent with the lists on screen.
//
// With no job description there is nothing to be missing against, so the
// to-acquire list is empty and the score collapses to 100 when any skills
// were detected, or 0 when none were. That is the advertised behavior of the
// formula, not a bug.
func (n *matchNormalizer) Normalize(raw *models.RawAnalysisResult, jobDescription string) models.NormalizedMatchResult {
	var analysis models.EngineAnalysis
	if raw != nil && raw.Analysis != nil {
		analysis = *raw.Analysis
	}

	implemented := dedupe(analysis.ProjectSkillsImplemented)
	if jobDescription == "" && len(implemented) == 0 {
		implemented = dedupe(analysis.ResumeSkillsDetected)
		if len(implemented) == 0 && raw != nil {
			implemented = dedupe(raw.SkillsFound)
		}
	}

	var toAcquire []string
	if jobDescription != "" {
		toAcquire = dedupe(analysis.FutureSkillsRequired)
	}

	total := len(implemented) + len(toAcquire)
	var score float64
	if total > 0 {
		score = float64(len(implemented)) / float64(total) * 100
	}

	return models.NormalizedMatchResult{
		SkillsImplemented: implemented,
		SkillsToAcquire:   toAcquire,
		MatchScore:        score,
		Audit: models.AuditTrail{
			ImplementedCount: len(implemented),
			ToAcquireCount:   len(toAcquire),
			Total:            total,
			Formula:          matchFormula,
		},
	}
}

// dedupe removes exact duplicates, case-sensitively, keeping first-seen order.
// Always returns a non-nil slice so results serialize as [] rather than null.
func dedupe(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
