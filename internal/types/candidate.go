package types

// ResumeInput is the caller-supplied input for one pipeline run.
// At least one of FilePath or RawText must carry content.
type ResumeInput struct {
	FilePath string `json:"file_path,omitempty" validate:"required_without=RawText"`
	RawText  string `json:"raw_text,omitempty" validate:"required_without=FilePath"`
}

// Empty reports whether the input carries no resume content at all.
func (r ResumeInput) Empty() bool {
	return r.FilePath == "" && r.RawText == ""
}

// CandidateProfile is the derived candidate view the matching engine consumes.
// It is never persisted; achievements and domains are carried through but not
// used in scoring.
type CandidateProfile struct {
	Skills          []string        `json:"technical_skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	KeyAchievements []string        `json:"key_achievements,omitempty"`
	DomainExpertise []string        `json:"domain_expertise,omitempty"`
}
