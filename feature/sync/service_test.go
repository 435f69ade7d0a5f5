package sync

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"datacache/core/adapters"
	"datacache/core/datacache"
	"datacache/core/jsonapi"
	"datacache/core/persistence"
	"datacache/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stubPages(client *mocks.Client, pages map[string]string) {
	objects := make([]minio.ObjectInfo, 0, len(pages))
	for key, body := range pages {
		objects = append(objects, minio.ObjectInfo{Key: key})
		client.On("GetObject", mock.Anything, "test-bucket", key, mock.Anything).
			Return(io.NopCloser(strings.NewReader(body)), nil)
	}
	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(mocks.Objects(objects...))
}

func TestService_Normalize(t *testing.T) {
	svc, _ := setupService(t, false)

	update, err := svc.Normalize([]byte(pageOne))
	require.NoError(t, err)

	assert.Equal(t, datacache.Summary{
		Contents:          1,
		Categories:        1,
		ContentCategories: 2,
		Relationships:     2,
	}, update.Summary(), "the included pass re-derives the join from the seeded edge")
	assert.Equal(t, int64(3), update.ContentCategories[0].CategoryID)
}

func TestService_Normalize_Errors(t *testing.T) {
	svc, _ := setupService(t, false)

	_, err := svc.Normalize([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, jsonapi.ErrMalformedDocument)

	_, err = svc.Normalize([]byte(undecodablePage))
	assert.ErrorIs(t, err, adapters.ErrDecoding)
}

func TestService_Ingest(t *testing.T) {
	t.Run("WithoutDatabase", func(t *testing.T) {
		svc, _ := setupService(t, false)

		summary, err := svc.Ingest(context.Background(), []byte(pageOne))
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Documents)
		assert.False(t, summary.Persisted)
		assert.Equal(t, 1, summary.Counts.Contents)
	})

	t.Run("WithDatabase", func(t *testing.T) {
		svc, _ := setupService(t, true)

		summary, err := svc.Ingest(context.Background(), []byte(pageOne))
		require.NoError(t, err)
		assert.True(t, summary.Persisted)
		assert.Equal(t, persistence.ApplyStats{Upserted: 2, Linked: 2}, summary.Stats)
	})
}

func TestService_SyncPrefix(t *testing.T) {
	svc, client := setupService(t, true)
	stubPages(client, map[string]string{
		"documents/contents/page-002.json": pageTwo,
		"documents/contents/page-001.json": pageOne,
	})

	var archived []byte
	client.On("PutObject", mock.Anything, "test-bucket", "normalized/contents.json", mock.Anything, mock.Anything,
		minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			archived, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	summary, err := svc.SyncPrefix(context.Background(), "contents/")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Documents)
	assert.Equal(t, 2, summary.Counts.Contents)
	assert.True(t, summary.Persisted)
	assert.Equal(t, "normalized/contents.json", summary.Archive)

	var update datacache.Update
	require.NoError(t, json.Unmarshal(archived, &update))
	require.Len(t, update.Contents, 2)
	assert.Equal(t, int64(1), update.Contents[0].ID, "pages merge in key order")
	assert.Equal(t, int64(2), update.Contents[1].ID)
	assert.Len(t, update.ContentDomains, 2)
	client.AssertExpectations(t)
}

func TestService_SyncPrefix_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketMissing", func(t *testing.T) {
		svc, client := setupService(t, false)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

		_, err := svc.SyncPrefix(ctx, "contents/")
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("NoDocuments", func(t *testing.T) {
		svc, client := setupService(t, false)
		stubPages(client, map[string]string{})

		_, err := svc.SyncPrefix(ctx, "contents/")
		assert.ErrorIs(t, err, ErrNoDocuments)
	})

	t.Run("UndecodablePage", func(t *testing.T) {
		svc, client := setupService(t, false)
		stubPages(client, map[string]string{
			"documents/contents/page-001.json": pageOne,
			"documents/contents/page-002.json": undecodablePage,
		})

		_, err := svc.SyncPrefix(ctx, "contents/")
		assert.ErrorIs(t, err, adapters.ErrDecoding)
		assert.ErrorContains(t, err, "page 2")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MalformedPage", func(t *testing.T) {
		svc, client := setupService(t, false)
		stubPages(client, map[string]string{
			"documents/contents/page-001.json": `{"data": [`,
		})

		_, err := svc.SyncPrefix(ctx, "contents/")
		assert.ErrorIs(t, err, jsonapi.ErrMalformedDocument)
		assert.ErrorContains(t, err, "page-001.json")
	})
}

func TestService_SyncPrefix_CollapsesConcurrentCalls(t *testing.T) {
	svc, client := setupService(t, false)

	release := make(chan struct{})
	entered := make(chan struct{})
	client.On("BucketExists", mock.Anything, "test-bucket").
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(false, nil)

	var wg gosync.WaitGroup
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.SyncPrefix(context.Background(), "contents/")
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = svc.SyncPrefix(context.Background(), "contents/")
	}()
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.ErrorIs(t, errs[0], ErrBucketNotFound)
	assert.ErrorIs(t, errs[1], ErrBucketNotFound)
	client.AssertNumberOfCalls(t, "BucketExists", 1)
}

func TestService_SyncPrefix_JoinedCallSurvivesFirstCancel(t *testing.T) {
	svc, client := setupService(t, false)

	release := make(chan struct{})
	entered := make(chan struct{})
	client.On("BucketExists", mock.Anything, "test-bucket").
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(true, nil).Once()
	stubPages(client, map[string]string{
		"documents/contents/page-001.json": pageOne,
	})
	client.On("PutObject", mock.Anything, "test-bucket", "normalized/contents.json", mock.Anything, mock.Anything,
		mock.Anything).Return(minio.UploadInfo{}, nil)

	first, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg gosync.WaitGroup
	summaries := make([]Summary, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		summaries[0], errs[0] = svc.SyncPrefix(first, "contents/")
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		summaries[1], errs[1] = svc.SyncPrefix(context.Background(), "contents/")
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 1, summaries[1].Documents)
	assert.Equal(t, "normalized/contents.json", summaries[1].Archive)
	client.AssertNumberOfCalls(t, "BucketExists", 1)
}

func TestService_Deletions(t *testing.T) {
	ctx := context.Background()

	t.Run("WithoutDatabase", func(t *testing.T) {
		svc, _ := setupService(t, false)

		_, err := svc.DeleteBookmarks(ctx, []int64{1})
		assert.ErrorIs(t, err, persistence.ErrNoDatabase)
		_, err = svc.DeleteProgressions(ctx, []int64{1})
		assert.ErrorIs(t, err, persistence.ErrNoDatabase)
	})

	t.Run("WithDatabase", func(t *testing.T) {
		svc, _ := setupService(t, true)
		_, err := svc.Ingest(ctx, []byte(`{
		  "data": [{
		    "type": "bookmarks", "id": "10",
		    "attributes": {"created_at": "2021-05-01T00:00:00Z"},
		    "relationships": {"content": {"data": {"type": "contents", "id": "1"}}}
		  }]
		}`))
		require.NoError(t, err)

		stats, err := svc.DeleteBookmarks(ctx, []int64{1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Deleted)

		stats, err = svc.DeleteProgressions(ctx, []int64{1})
		require.NoError(t, err)
		assert.Zero(t, stats.Deleted)
	})
}
