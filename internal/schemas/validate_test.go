package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	doc, ok := ExtractJSON(`Here is the result: {"a": 1} hope that helps`)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, doc)

	_, ok = ExtractJSON("no json here")
	assert.False(t, ok)

	_, ok = ExtractJSON("} backwards {")
	assert.False(t, ok)
}

func TestDecodeAnalysis_Valid(t *testing.T) {
	text := `{
		"technical_skills": ["Python", "SQL"],
		"years_of_experience": 5,
		"education": {"degree": "BSc", "institution": "MIT", "graduation_year": 2018},
		"experience_level": "Senior",
		"key_achievements": ["Led a team"],
		"domain_expertise": ["fintech"]
	}`

	analysis, err := DecodeAnalysis(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, analysis.TechnicalSkills)
	assert.Equal(t, "Senior", analysis.ExperienceLevel)
	assert.Equal(t, 2018, analysis.Education.GraduationYear)
}

func TestDecodeAnalysis_ProseWrapped(t *testing.T) {
	text := `Sure! Here is the analysis you asked for:
	{"technical_skills": ["Go"], "experience_level": "Mid-level"}`

	analysis, err := DecodeAnalysis(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, analysis.TechnicalSkills)
}

func TestDecodeAnalysis_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "the candidate seems strong"},
		{"missing required fields", `{"years_of_experience": 3}`},
		{"wrong field type", `{"technical_skills": "Python", "experience_level": "Senior"}`},
		{"truncated", `{"technical_skills": ["Py`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := DecodeAnalysis(tt.text)
			require.Error(t, err)
			assert.Nil(t, analysis)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestDecodeStructuredResume_Valid(t *testing.T) {
	text := `{
		"contact_info": {"email": "jane@example.com"},
		"summary": "Backend engineer",
		"technical_skills": ["Go", "Postgres"],
		"education": [{"degree": "BSc", "field_of_study": "CS", "institution": "MIT", "graduation_year": 2019}],
		"work_experience": [{"title": "Engineer", "company": "TechCorp", "duration": "3 years", "responsibilities": ["APIs"]}],
		"certifications": [],
		"domain_expertise": ["payments"],
		"years_of_experience": 4
	}`

	resume, err := DecodeStructuredResume(text)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resume.ContactInfo["email"])
	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "TechCorp", resume.WorkExperience[0].Company)
	assert.InDelta(t, 4, resume.YearsOfExperience, 0.001)
}

func TestDecodeStructuredResume_FailsClosed(t *testing.T) {
	resume, err := DecodeStructuredResume(`{"technical_skills": 42}`)
	require.Error(t, err)
	assert.Nil(t, resume)
}

func TestDefaultSkillsAnalysis(t *testing.T) {
	def := DefaultSkillsAnalysis()
	assert.Empty(t, def.TechnicalSkills)
	assert.Equal(t, "Unknown", def.Education.Degree)
	assert.Equal(t, "Unknown", def.Education.Institution)
	assert.Zero(t, def.Education.GraduationYear)
	assert.Empty(t, def.ExperienceLevel)
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Errors: []FieldError{{Field: "technical_skills", Message: "expected array"}}}
	assert.Contains(t, err.Error(), "technical_skills")
	assert.Contains(t, err.Error(), "expected array")
}
