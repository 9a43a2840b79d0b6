package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// SeedFromJSON loads job postings from a JSON array and inserts them into the
// store. IDs in the input are ignored; the store assigns its own. Postings
// with an unrecognized experience level are rejected rather than silently
// stored outside the enumerated set.
func SeedFromJSON(ctx context.Context, st Store, r io.Reader) (int, error) {
	var postings []types.JobPosting
	if err := json.NewDecoder(r).Decode(&postings); err != nil {
		return 0, fmt.Errorf("failed to decode seed file: %w", err)
	}

	inserted := 0
	for i, posting := range postings {
		if !posting.ExperienceLevel.Valid() {
			return inserted, fmt.Errorf("seed entry %d (%q): invalid experience level %q",
				i, posting.Title, posting.ExperienceLevel)
		}
		posting.ID = 0
		if _, err := st.AddJob(ctx, posting); err != nil {
			return inserted, fmt.Errorf("seed entry %d (%q): %w", i, posting.Title, err)
		}
		inserted++
	}
	return inserted, nil
}

// SeedFromFile opens the named JSON file and seeds the store from it.
func SeedFromFile(ctx context.Context, st Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return SeedFromJSON(ctx, st, f)
}
