package trending

import "context"

// Record represents one trending repository observation: a repository that
// appeared in a daily digest under a language section.
type Record struct {
	Date        string `json:"date"`
	Language    string `json:"language"`
	RepoSlug    string `json:"repoSlug"`
	Description string `json:"description"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Date == "" {
		return Errorf(EINVALID, "record date required")
	}
	if r.Language == "" {
		return Errorf(EINVALID, "record language required")
	}
	if r.RepoSlug == "" {
		return Errorf(EINVALID, "record repo slug required")
	}
	return nil
}

// RecordService represents a service for storing and querying trending
// records.
type RecordService interface {
	// UpsertRecords writes a batch of records. A record replaces any
	// existing row sharing its (date, language, repo_slug) key. Returns the
	// number of records written. Returns EINVALID if any record fails
	// validation; the batch is not applied in that case.
	UpsertRecords(ctx context.Context, records []*Record) (int, error)

	// FindRecords retrieves records matching the filter, ordered by
	// (date, language, repo_slug).
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// CountRecords returns the total number of stored records.
	CountRecords(ctx context.Context) (int, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Date     *string `json:"date"`
	Language *string `json:"language"`
	RepoSlug *string `json:"repoSlug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
