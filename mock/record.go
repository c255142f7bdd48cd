// Package mock provides function-field mock implementations of trending
// service interfaces for tests.
package mock

import (
	"context"

	trending "github.com/theskumar/github-trending"
)

var _ trending.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of trending.RecordService.
type RecordService struct {
	UpsertRecordsFn func(ctx context.Context, records []*trending.Record) (int, error)
	FindRecordsFn   func(ctx context.Context, filter trending.RecordFilter) ([]*trending.Record, error)
	CountRecordsFn  func(ctx context.Context) (int, error)
}

func (s *RecordService) UpsertRecords(ctx context.Context, records []*trending.Record) (int, error) {
	return s.UpsertRecordsFn(ctx, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter trending.RecordFilter) ([]*trending.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	return s.CountRecordsFn(ctx)
}
