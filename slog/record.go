// Package slog provides logging decorators for trending services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	trending "github.com/theskumar/github-trending"
)

// Ensure LoggingRecordService implements trending.RecordService.
var _ trending.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   trending.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next trending.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// UpsertRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) UpsertRecords(ctx context.Context, records []*trending.Record) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("record upsert",
			"batch", len(records),
			"written", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertRecords(ctx, records)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter trending.RecordFilter) (records []*trending.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("record query",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// CountRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CountRecords(ctx context.Context) (count int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("record count",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CountRecords(ctx)
}
