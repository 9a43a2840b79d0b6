package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-recruiter/internal/types"
)

func TestCodec_RoundTripLossless(t *testing.T) {
	original := types.JobPosting{
		ID:    7,
		Title: "ML Engineer",
		SalaryRange: types.SalaryRange{
			"min":      float64(100000),
			"max":      float64(140000),
			"currency": "USD",
			"bands": map[string]any{
				"base":  float64(120000),
				"bonus": map[string]any{"target_pct": float64(10.5), "notes": "paid quarterly"},
			},
		},
		Requirements: []string{"Python", "TensorFlow / PyTorch", "数据处理"},
		Benefits:     []string{"Health insurance", "Remote stipend"},
	}

	enc, err := encodeJob(original)
	require.NoError(t, err)

	decoded := types.JobPosting{ID: 7, Title: "ML Engineer"}
	require.NoError(t, decodeJobFields(&decoded, enc))

	assert.Equal(t, original.SalaryRange, decoded.SalaryRange)
	assert.Equal(t, original.Requirements, decoded.Requirements)
	assert.Equal(t, original.Benefits, decoded.Benefits)
}

func TestCodec_NilFields(t *testing.T) {
	enc, err := encodeJob(types.JobPosting{Title: "Bare"})
	require.NoError(t, err)

	var decoded types.JobPosting
	require.NoError(t, decodeJobFields(&decoded, enc))
	assert.Nil(t, decoded.SalaryRange)
	assert.Nil(t, decoded.Requirements)
	assert.Nil(t, decoded.Benefits)
}

func TestDecodeJobFields_MalformedColumn(t *testing.T) {
	job := types.JobPosting{ID: 3}
	err := decodeJobFields(&job, encodedFields{benefits: []byte(`["unterminated`)})
	require.Error(t, err)

	recErr, ok := err.(*RecordError)
	require.True(t, ok)
	assert.Equal(t, int64(3), recErr.JobID)
	assert.Equal(t, "benefits", recErr.Field)
}
