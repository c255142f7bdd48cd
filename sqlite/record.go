package sqlite

import (
	"context"
	"strings"

	trending "github.com/theskumar/github-trending"
)

// Compile-time interface verification.
var _ trending.RecordService = (*RecordService)(nil)

// RecordService implements trending.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// UpsertRecords writes a batch of records. Each record replaces any existing
// row with the same (date, language, repo_slug) key. The batch is applied in
// a single transaction; there is no cross-batch transaction requirement.
func (s *RecordService) UpsertRecords(ctx context.Context, records []*trending.Record) (int, error) {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return 0, err
		}
	}

	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trending_repos (date, language, repo_slug, description)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date, language, repo_slug) DO UPDATE SET description = excluded.description
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Date, r.Language, r.RepoSlug, r.Description); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(records), nil
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter trending.RecordFilter) ([]*trending.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT date, language, repo_slug, description FROM trending_repos WHERE 1=1")

	if filter.Date != nil {
		query.WriteString(" AND date = ?")
		args = append(args, *filter.Date)
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, *filter.Language)
	}
	if filter.RepoSlug != nil {
		query.WriteString(" AND repo_slug = ?")
		args = append(args, *filter.RepoSlug)
	}

	query.WriteString(" ORDER BY date, language, repo_slug")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*trending.Record
	for rows.Next() {
		var r trending.Record
		if err := rows.Scan(&r.Date, &r.Language, &r.RepoSlug, &r.Description); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}

// CountRecords returns the total number of stored records.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trending_repos").Scan(&count)
	return count, err
}
