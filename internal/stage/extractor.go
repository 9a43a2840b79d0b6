// Package stage implements the pipeline stage collaborators that delegate
// semantic work to the language-model service.
package stage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/llm"
	"github.com/jonathan/ai-recruiter/internal/schemas"
	"github.com/jonathan/ai-recruiter/internal/types"
)

// StatusCompleted marks a stage output produced without incident.
const StatusCompleted = "completed"

// TextExtractor converts a document file into plain text. PDF extraction is
// an external collaborator; implementations live outside the core.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

const extractorInstructions = `Extract and structure information from resumes.
You will receive raw text extracted from a resume.
Identify key sections such as Contact Information, Education, Work Experience, Skills, and Certifications.

Return ONLY a JSON object with this exact structure:
{
  "contact_info": {"email": "...", "phone": "..."},
  "summary": "...",
  "technical_skills": ["..."],
  "education": [{"degree": "...", "field_of_study": "...", "institution": "...", "graduation_year": 0}],
  "work_experience": [{"title": "...", "company": "...", "duration": "...", "responsibilities": ["..."]}],
  "certifications": ["..."],
  "domain_expertise": ["..."],
  "years_of_experience": 0
}

Resume text:
`

// Extractor turns raw resume content into a structured resume record.
type Extractor struct {
	llm   llm.Client
	files TextExtractor
	log   *zap.Logger
}

// NewExtractor creates the extraction collaborator. files may be nil when
// only raw-text input is expected.
func NewExtractor(client llm.Client, files TextExtractor, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{llm: client, files: files, log: log}
}

// Run extracts structured data from the resume input. Model output that
// fails schema validation is replaced by the empty default record rather
// than propagated.
func (e *Extractor) Run(ctx context.Context, in types.ResumeInput) (*types.ExtractionResult, error) {
	rawText := in.RawText
	if rawText == "" && in.FilePath != "" {
		if e.files == nil {
			return nil, fmt.Errorf("file input %q requires a text extractor", in.FilePath)
		}
		text, err := e.files.ExtractText(ctx, in.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", in.FilePath, err)
		}
		rawText = text
	}
	if rawText == "" {
		return nil, fmt.Errorf("no resume content to extract")
	}

	out, err := e.llm.CompleteJSON(ctx, extractorInstructions+rawText)
	if err != nil {
		return nil, fmt.Errorf("extraction query failed: %w", err)
	}

	structured := schemas.DefaultStructuredResume()
	decoded, err := schemas.DecodeStructuredResume(out)
	if err != nil {
		var perr *schemas.ParseError
		if !errors.As(err, &perr) {
			return nil, err
		}
		e.log.Warn("extraction output failed validation, using default record", zap.Error(perr))
	} else {
		structured = *decoded
	}

	return &types.ExtractionResult{
		RawText:          rawText,
		StructuredData:   structured,
		ExtractionStatus: StatusCompleted,
	}, nil
}
