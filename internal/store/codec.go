package store

import (
	"encoding/json"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// encodedFields is the at-rest form of a posting's structured columns.
type encodedFields struct {
	salaryRange  []byte
	requirements []byte
	benefits     []byte
}

// encodeJob serializes the structured fields of a posting for storage.
func encodeJob(job types.JobPosting) (encodedFields, error) {
	var enc encodedFields
	var err error

	if enc.salaryRange, err = json.Marshal(job.SalaryRange); err != nil {
		return enc, &RecordError{JobID: job.ID, Field: "salary_range", Err: err}
	}
	if enc.requirements, err = json.Marshal(job.Requirements); err != nil {
		return enc, &RecordError{JobID: job.ID, Field: "requirements", Err: err}
	}
	if enc.benefits, err = json.Marshal(job.Benefits); err != nil {
		return enc, &RecordError{JobID: job.ID, Field: "benefits", Err: err}
	}
	return enc, nil
}

// decodeJobFields fills the structured fields of a posting from their stored
// encoded form. A nil column decodes to the zero value.
func decodeJobFields(job *types.JobPosting, enc encodedFields) error {
	if enc.salaryRange != nil {
		if err := json.Unmarshal(enc.salaryRange, &job.SalaryRange); err != nil {
			return &RecordError{JobID: job.ID, Field: "salary_range", Err: err}
		}
	}
	if enc.requirements != nil {
		if err := json.Unmarshal(enc.requirements, &job.Requirements); err != nil {
			return &RecordError{JobID: job.ID, Field: "requirements", Err: err}
		}
	}
	if enc.benefits != nil {
		if err := json.Unmarshal(enc.benefits, &job.Benefits); err != nil {
			return &RecordError{JobID: job.ID, Field: "benefits", Err: err}
		}
	}
	return nil
}
