// Package schemas validates model-produced JSON against strict schemas and
// fails closed: malformed output becomes a ParseError the caller replaces
// with a documented default record, never live data.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// ParseError reports that model output was not valid structured data.
// Recovered locally by substituting a default record; never fatal on its own.
type ParseError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *ParseError) Error() string {
	if len(e.Errors) == 0 {
		return "model output is not valid structured data"
	}
	var sb strings.Builder
	sb.WriteString("model output failed validation:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// parseError wraps a plain decode failure as a ParseError.
func parseError(field string, err error) *ParseError {
	return &ParseError{Errors: []FieldError{{Field: field, Message: err.Error()}}}
}

// ExtractJSON locates the JSON object embedded in model output by finding the
// outermost braces. Models occasionally wrap JSON in prose even when asked
// not to.
func ExtractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// validate checks a JSON document against a schema, returning a ParseError
// with field paths on failure.
func validate(schemaJSON, doc string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return parseError("(document)", err)
	}
	if result.Valid() {
		return nil
	}

	perr := &ParseError{}
	for _, desc := range result.Errors() {
		perr.Errors = append(perr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return perr
}

// DecodeAnalysis parses and validates the skills analysis produced by the
// analysis collaborator. Any failure yields a ParseError; the result is only
// non-nil when the document fully validates.
func DecodeAnalysis(text string) (*types.SkillsAnalysis, error) {
	doc, ok := ExtractJSON(text)
	if !ok {
		return nil, parseError("(document)", fmt.Errorf("no JSON content found"))
	}
	if err := validate(analysisSchema, doc); err != nil {
		return nil, err
	}

	var analysis types.SkillsAnalysis
	if err := json.Unmarshal([]byte(doc), &analysis); err != nil {
		return nil, parseError("(document)", err)
	}
	return &analysis, nil
}

// DecodeStructuredResume parses and validates the structured resume produced
// by the extraction collaborator.
func DecodeStructuredResume(text string) (*types.StructuredResume, error) {
	doc, ok := ExtractJSON(text)
	if !ok {
		return nil, parseError("(document)", fmt.Errorf("no JSON content found"))
	}
	if err := validate(extractionSchema, doc); err != nil {
		return nil, err
	}

	var resume types.StructuredResume
	if err := json.Unmarshal([]byte(doc), &resume); err != nil {
		return nil, parseError("(document)", err)
	}
	return &resume, nil
}

// DefaultSkillsAnalysis is the documented all-empty record substituted when
// the analysis collaborator's output fails validation.
func DefaultSkillsAnalysis() types.SkillsAnalysis {
	return types.SkillsAnalysis{
		TechnicalSkills: []string{},
		Education: types.AnalysisEducation{
			Degree:      "Unknown",
			Institution: "Unknown",
		},
		ExperienceLevel: "",
		KeyAchievements: []string{},
		DomainExpertise: []string{},
	}
}

// DefaultStructuredResume is the empty record substituted when the extraction
// collaborator's output fails validation.
func DefaultStructuredResume() types.StructuredResume {
	return types.StructuredResume{
		ContactInfo:     map[string]string{},
		TechnicalSkills: []string{},
		Certifications:  []string{},
		DomainExpertise: []string{},
	}
}
