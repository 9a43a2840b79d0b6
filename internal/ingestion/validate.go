package ingestion

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ai-recruiter/internal/pipeline"
	"github.com/jonathan/ai-recruiter/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput checks a resume input before it enters the workflow.
func ValidateInput(in types.ResumeInput) error {
	if err := validate.Struct(in); err != nil {
		return &pipeline.ValidationError{
			Field:  "resume",
			Reason: "either file_path or raw_text must be provided",
		}
	}
	return nil
}
