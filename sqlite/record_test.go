package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	trending "github.com/theskumar/github-trending"
	"github.com/theskumar/github-trending/sqlite"
)

func TestRecordService_UpsertRecords(t *testing.T) {
	t.Parallel()

	t.Run("inserts new records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		n, err := svc.UpsertRecords(ctx, []*trending.Record{
			{Date: "2017-08-29", Language: "python", RepoSlug: "owner/repo", Description: "A cool tool"},
			{Date: "2017-08-29", Language: "python", RepoSlug: "foo/bar", Description: "Another one"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		count, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("later record with same key overwrites earlier", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		_, err := svc.UpsertRecords(ctx, []*trending.Record{
			{Date: "2017-08-29", Language: "python", RepoSlug: "owner/repo", Description: "old description"},
		})
		require.NoError(t, err)

		_, err = svc.UpsertRecords(ctx, []*trending.Record{
			{Date: "2017-08-29", Language: "python", RepoSlug: "owner/repo", Description: "new description"},
		})
		require.NoError(t, err)

		records, err := svc.FindRecords(ctx, trending.RecordFilter{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "new description", records[0].Description)
	})

	t.Run("distinct keys are kept as separate rows", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		_, err := svc.UpsertRecords(ctx, []*trending.Record{
			{Date: "2017-08-29", Language: "python", RepoSlug: "owner/repo", Description: "d1"},
			{Date: "2017-08-30", Language: "python", RepoSlug: "owner/repo", Description: "d2"},
			{Date: "2017-08-29", Language: "go", RepoSlug: "owner/repo", Description: "d3"},
		})
		require.NoError(t, err)

		count, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		n, err := svc.UpsertRecords(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("returns EINVALID for invalid record without applying batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		_, err := svc.UpsertRecords(ctx, []*trending.Record{
			{Date: "2017-08-29", Language: "python", RepoSlug: "owner/repo", Description: "ok"},
			{Date: "2017-08-29", Language: "python"}, // missing slug
		})
		require.Error(t, err)
		assert.Equal(t, trending.EINVALID, trending.ErrorCode(err))

		count, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*sqlite.RecordService, context.Context) {
		t.Helper()
		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		_, err := svc.UpsertRecords(ctx, []*trending.Record{
			{Date: "2017-08-29", Language: "python", RepoSlug: "owner/repo", Description: "p1"},
			{Date: "2017-08-29", Language: "go", RepoSlug: "foo/bar", Description: "g1"},
			{Date: "2017-08-30", Language: "python", RepoSlug: "owner/repo", Description: "p2"},
		})
		require.NoError(t, err)
		return svc, ctx
	}

	t.Run("filters by date", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		date := "2017-08-29"
		records, err := svc.FindRecords(ctx, trending.RecordFilter{Date: &date})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filters by language and slug", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		lang := "python"
		slug := "owner/repo"
		records, err := svc.FindRecords(ctx, trending.RecordFilter{Language: &lang, RepoSlug: &slug})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "p1", records[0].Description)
		assert.Equal(t, "p2", records[1].Description)
	})

	t.Run("orders by date, language, slug", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		records, err := svc.FindRecords(ctx, trending.RecordFilter{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "foo/bar", records[0].RepoSlug)
		assert.Equal(t, "go", records[0].Language)
		assert.Equal(t, "2017-08-30", records[2].Date)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		records, err := svc.FindRecords(ctx, trending.RecordFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "p1", records[0].Description)
	})
}
