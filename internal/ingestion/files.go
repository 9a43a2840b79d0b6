package ingestion

import "context"

// FileExtractor adapts LoadResume to the extraction stage's TextExtractor
// contract.
type FileExtractor struct{}

// ExtractText loads and cleans the resume at path. The context is accepted
// for contract parity; local file reads are not cancellable.
func (FileExtractor) ExtractText(_ context.Context, path string) (string, error) {
	return LoadResume(path)
}
