package models

// RawAnalysisResult is the engine's response as-is. The engine's schema is not
// under our control and no field is guaranteed to be present, so everything
// here is optional; consumers must tolerate the zero value of any field.
type RawAnalysisResult struct {
	Filename      string          `json:"filename,omitempty"`
	SkillsFound   []string        `json:"skills_found,omitempty"`
	MatchedSkills []string        `json:"matched_skills,omitempty"`
	MissingSkills []string        `json:"missing_skills,omitempty"`
	JobMatchScore *float64        `json:"job_match_score,omitempty"`
	TotalSkills   *int            `json:"total_skills,omitempty"`
	TextSnippet   string          `json:"text_snippet,omitempty"`
	Analysis      *EngineAnalysis `json:"analysis,omitempty"`
	// Secondary narrative block produced by the engine's LLM pass.
	Narrative *EngineNarrative `json:"openai_analysis,omitempty"`
}

// EngineAnalysis is the nested skill breakdown the engine may return.
type EngineAnalysis struct {
	ProjectSkillsImplemented []string `json:"project_skills_implemented,omitempty"`
	FutureSkillsRequired     []string `json:"future_skills_required,omitempty"`
	RequiredSkillsFromJob    []string `json:"required_skills_from_job,omitempty"`
	MatchingSkills           []string `json:"matching_skills,omitempty"`
	ResumeSkillsDetected     []string `json:"resume_skills_detected,omitempty"`
	MissingSkills            []string `json:"missing_skills,omitempty"`
	Summary                  string   `json:"summary,omitempty"`
	ExperienceAlignment      string   `json:"experience_alignment,omitempty"`
	ExperienceLevel          string   `json:"experience_level,omitempty"`
	SkillMatchScore          *float64 `json:"skill_match_score,omitempty"`
}

// EngineNarrative carries the free-form strengths/weaknesses/recommendations
// text. Rendered verbatim when present, skipped when not.
type EngineNarrative struct {
	Summary          string   `json:"summary,omitempty"`
	Strengths        []string `json:"strengths,omitempty"`
	Weaknesses       []string `json:"weaknesses,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
	SoftSkills       []string `json:"soft_skills,omitempty"`
	TechnicalSkills  []string `json:"technical_skills,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	JobMatchAnalysis string   `json:"job_match_analysis,omitempty"`
}
