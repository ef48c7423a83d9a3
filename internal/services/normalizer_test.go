package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-match/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name            string
		raw             *models.RawAnalysisResult
		jobDescription  string
		wantImplemented []string
		wantToAcquire   []string
		wantScore       float64
	}{
		{
			name: "half of required skills implemented",
			raw: &models.RawAnalysisResult{
				Analysis: &models.EngineAnalysis{
					ProjectSkillsImplemented: []string{"Python", "SQL"},
					FutureSkillsRequired:     []string{"Docker", "Kubernetes"},
				},
			},
			jobDescription:  "Backend engineer with Docker experience",
			wantImplemented: []string{"Python", "SQL"},
			wantToAcquire:   []string{"Docker", "Kubernetes"},
			wantScore:       50.0,
		},
		{
			name:            "engine returned nothing",
			raw:             &models.RawAnalysisResult{},
			jobDescription:  "Any job",
			wantImplemented: []string{},
			wantToAcquire:   []string{},
			wantScore:       0,
		},
		{
			name:            "nil payload",
			raw:             nil,
			jobDescription:  "",
			wantImplemented: []string{},
			wantToAcquire:   []string{},
			wantScore:       0,
		},
		{
			name: "no job description degenerates to full match",
			raw: &models.RawAnalysisResult{
				Analysis: &models.EngineAnalysis{
					ProjectSkillsImplemented: []string{"Go"},
				},
			},
			jobDescription:  "",
			wantImplemented: []string{"Go"},
			wantToAcquire:   []string{},
			wantScore:       100.0,
		},
		{
			name: "no job description falls back to detected skills",
			raw: &models.RawAnalysisResult{
				Analysis: &models.EngineAnalysis{
					ResumeSkillsDetected: []string{"python", "sql", "excel"},
				},
			},
			jobDescription:  "",
			wantImplemented: []string{"python", "sql", "excel"},
			wantToAcquire:   []string{},
			wantScore:       100.0,
		},
		{
			name: "no job description falls back to top-level skills_found",
			raw: &models.RawAnalysisResult{
				SkillsFound: []string{"java", "teamwork"},
			},
			jobDescription:  "",
			wantImplemented: []string{"java", "teamwork"},
			wantToAcquire:   []string{},
			wantScore:       100.0,
		},
		{
			name: "required skills ignored without job description",
			raw: &models.RawAnalysisResult{
				Analysis: &models.EngineAnalysis{
					ProjectSkillsImplemented: []string{"Go"},
					FutureSkillsRequired:     []string{"Rust"},
				},
			},
			jobDescription:  "",
			wantImplemented: []string{"Go"},
			wantToAcquire:   []string{},
			wantScore:       100.0,
		},
		{
			name: "duplicates removed by exact label, order preserved",
			raw: &models.RawAnalysisResult{
				Analysis: &models.EngineAnalysis{
					ProjectSkillsImplemented: []string{"SQL", "Python", "SQL", "sql"},
					FutureSkillsRequired:     []string{"Docker", "Docker"},
				},
			},
			jobDescription:  "DBA role",
			wantImplemented: []string{"SQL", "Python", "sql"},
			wantToAcquire:   []string{"Docker"},
			wantScore:       75.0,
		},
		{
			name: "engine score fields are ignored",
			raw: &models.RawAnalysisResult{
				JobMatchScore: floatPtr(99),
				Analysis: &models.EngineAnalysis{
					ProjectSkillsImplemented: []string{"Python"},
					FutureSkillsRequired:     []string{"Docker", "Kubernetes"},
					SkillMatchScore:          floatPtr(87),
				},
			},
			jobDescription:  "DevOps role",
			wantImplemented: []string{"Python"},
			wantToAcquire:   []string{"Docker", "Kubernetes"},
			wantScore:       100.0 / 3.0,
		},
		{
			name: "only missing skills reported",
			raw: &models.RawAnalysisResult{
				Analysis: &models.EngineAnalysis{
					FutureSkillsRequired: []string{"Terraform", "AWS"},
				},
			},
			jobDescription:  "Cloud engineer",
			wantImplemented: []string{},
			wantToAcquire:   []string{"Terraform", "AWS"},
			wantScore:       0,
		},
	}

	normalizer := NewMatchNormalizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.Normalize(tt.raw, tt.jobDescription)

			assert.Equal(t, tt.wantImplemented, got.SkillsImplemented)
			assert.Equal(t, tt.wantToAcquire, got.SkillsToAcquire)
			assert.InDelta(t, tt.wantScore, got.MatchScore, 1e-9)

			// Audit trail must reproduce the displayed score.
			assert.Equal(t, len(got.SkillsImplemented), got.Audit.ImplementedCount)
			assert.Equal(t, len(got.SkillsToAcquire), got.Audit.ToAcquireCount)
			assert.Equal(t, got.Audit.ImplementedCount+got.Audit.ToAcquireCount, got.Audit.Total)
			assert.Equal(t, "(implemented / total) * 100", got.Audit.Formula)

			assert.GreaterOrEqual(t, got.MatchScore, 0.0)
			assert.LessOrEqual(t, got.MatchScore, 100.0)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := &models.RawAnalysisResult{
		Analysis: &models.EngineAnalysis{
			ProjectSkillsImplemented: []string{"Python", "SQL", "Python"},
			FutureSkillsRequired:     []string{"Docker"},
			Summary:                  "solid backend profile",
		},
	}

	normalizer := NewMatchNormalizer()

	first := normalizer.Normalize(raw, "backend role")
	second := normalizer.Normalize(raw, "backend role")

	require.Equal(t, first, second)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{}, dedupe(nil))
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "b", "a", "b", "a"}))
	assert.Equal(t, []string{"A", "a"}, dedupe([]string{"A", "a", "A"}))
}
