package types

// Education is one education entry extracted from a resume.
type Education struct {
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduation_year"`
}

// WorkExperience is one employment entry extracted from a resume.
type WorkExperience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// StructuredResume is the structured form of a resume produced by the
// extraction stage.
type StructuredResume struct {
	ContactInfo       map[string]string `json:"contact_info"`
	Summary           string            `json:"summary"`
	TechnicalSkills   []string          `json:"technical_skills"`
	Education         []Education       `json:"education"`
	WorkExperience    []WorkExperience  `json:"work_experience"`
	Certifications    []string          `json:"certifications"`
	DomainExpertise   []string          `json:"domain_expertise"`
	YearsOfExperience float64           `json:"years_of_experience"`
}

// ExtractionResult is the output of the extraction stage.
type ExtractionResult struct {
	RawText          string           `json:"raw_text"`
	StructuredData   StructuredResume `json:"structured_data"`
	ExtractionStatus string           `json:"extraction_status"`
}

// AnalysisEducation is the condensed education record used in skill analysis.
type AnalysisEducation struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduation_year"`
}

// SkillsAnalysis is the model-produced assessment of a candidate.
type SkillsAnalysis struct {
	TechnicalSkills   []string          `json:"technical_skills"`
	YearsOfExperience float64           `json:"years_of_experience"`
	Education         AnalysisEducation `json:"education"`
	ExperienceLevel   string            `json:"experience_level"`
	KeyAchievements   []string          `json:"key_achievements"`
	DomainExpertise   []string          `json:"domain_expertise"`
}

// AnalysisResult is the output of the analysis stage.
type AnalysisResult struct {
	SkillsAnalysis    SkillsAnalysis `json:"skills_analysis"`
	AnalysisTimestamp string         `json:"analysis_timestamp"`
	ConfidenceScore   float64        `json:"confidence_score"`
}

// MatchedJob is one entry in the matching stage output.
type MatchedJob struct {
	Title        string      `json:"title"`
	MatchScore   string      `json:"match_score"`
	Location     string      `json:"location"`
	SalaryRange  SalaryRange `json:"salary_range"`
	Requirements []string    `json:"requirements"`
}

// MatchResult is the output of the matching stage. NumberOfMatches counts
// every posting that cleared the score threshold, before truncation to the
// top entries.
type MatchResult struct {
	MatchedJobs     []MatchedJob `json:"matched_jobs"`
	MatchTimestamp  string       `json:"match_timestamp"`
	NumberOfMatches int          `json:"number_of_matches"`
}

// ScreeningResult is the normalized output of the screening stage.
type ScreeningResult struct {
	ScreeningReport string `json:"screening_report"`
	ScreeningScore  int    `json:"screening_score"`
	ScreeningStatus string `json:"screening_status"`
}

// RecommendationResult is the normalized output of the recommendation stage.
type RecommendationResult struct {
	FinalRecommendation string `json:"final_recommendation"`
}
