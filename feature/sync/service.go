package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"datacache/core/adapters"
	"datacache/core/datacache"
	"datacache/core/jsonapi"
	"datacache/core/persistence"
	"datacache/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoDocuments is returned when a prefix holds no JSON documents.
	ErrNoDocuments = errors.New("no documents found")
	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)

// Config holds the object storage layout and loading limits of the service.
type Config struct {
	Storage         storage.Config
	PageConcurrency int
}

// Summary describes the outcome of an ingestion.
type Summary struct {
	Documents int                    `json:"documents"`
	Counts    datacache.Summary      `json:"counts"`
	Persisted bool                   `json:"persisted"`
	Stats     persistence.ApplyStats `json:"stats"`
	Archive   string                 `json:"archive,omitempty"`
}

// Service normalizes documents and writes them to the cache.
type Service struct {
	client     storage.Client
	store      *persistence.Store
	normalizer *datacache.Normalizer
	cfg        Config
	logger     *zap.Logger
	group      singleflight.Group
}

// NewService creates a new sync service. The store may have no database, in which
// case updates are normalized and archived but not persisted.
func NewService(client storage.Client, store *persistence.Store, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		store:      store,
		normalizer: datacache.NewNormalizer(adapters.Default()),
		cfg:        cfg,
		logger:     logger,
	}
}

// Normalize parses a raw document and loads it into an update.
func (s *Service) Normalize(raw []byte) (datacache.Update, error) {
	doc, err := jsonapi.Parse(raw)
	if err != nil {
		return datacache.Update{}, err
	}
	return s.normalizer.LoadFrom(doc)
}

// Ingest normalizes a raw document and persists the result when a database is available.
func (s *Service) Ingest(ctx context.Context, raw []byte) (Summary, error) {
	update, err := s.Normalize(raw)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Documents: 1, Counts: update.Summary()}
	if err := s.persist(ctx, update, &summary); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// SyncPrefix loads every page stored under prefix (relative to the document prefix),
// persists the merged update and archives it. Concurrent calls for the same prefix
// are collapsed into one run whose result all callers share. The shared run ignores
// the cancellation of the caller that started it, so it is not cut short for the
// callers that joined.
func (s *Service) SyncPrefix(ctx context.Context, prefix string) (Summary, error) {
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(prefix, func() (any, error) {
		return s.syncPrefix(runCtx, prefix)
	})
	if shared {
		s.logger.Debug("Joined in-flight sync", zap.String("prefix", prefix))
	}
	if err != nil {
		return Summary{}, err
	}
	return v.(Summary), nil
}

func (s *Service) syncPrefix(ctx context.Context, prefix string) (Summary, error) {
	bucket := s.cfg.Storage.Bucket
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return Summary{}, fmt.Errorf("checking bucket %s: %w", bucket, err)
	}
	if !exists {
		return Summary{}, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	documents := s.cfg.Storage.DocumentKey(prefix)
	keys, err := storage.ListKeys(ctx, s.client, bucket, documents, ".json")
	if err != nil {
		return Summary{}, err
	}
	if len(keys) == 0 {
		return Summary{}, fmt.Errorf("%w under %s", ErrNoDocuments, documents)
	}

	docs, err := s.fetchDocuments(ctx, keys)
	if err != nil {
		return Summary{}, err
	}

	update, err := s.normalizer.LoadPages(ctx, docs, s.cfg.PageConcurrency)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Documents: len(docs), Counts: update.Summary()}
	if err := s.persist(ctx, update, &summary); err != nil {
		return Summary{}, err
	}

	archive, err := s.archive(ctx, prefix, update)
	if err != nil {
		return Summary{}, err
	}
	summary.Archive = archive

	s.logger.Info("Synced prefix",
		zap.String("prefix", prefix),
		zap.Int("documents", summary.Documents),
		zap.Int("contents", summary.Counts.Contents),
		zap.Bool("persisted", summary.Persisted),
	)
	return summary, nil
}

// fetchDocuments downloads and parses the pages concurrently, keeping key order.
func (s *Service) fetchDocuments(ctx context.Context, keys []string) ([]*jsonapi.Document, error) {
	docs := make([]*jsonapi.Document, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	if s.cfg.PageConcurrency > 0 {
		g.SetLimit(s.cfg.PageConcurrency)
	}
	for i, key := range keys {
		g.Go(func() error {
			raw, err := storage.ReadObject(gctx, s.client, s.cfg.Storage.Bucket, key)
			if err != nil {
				return err
			}
			doc, err := jsonapi.Parse(raw)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", key, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Service) archive(ctx context.Context, prefix string, update datacache.Update) (string, error) {
	key := s.cfg.Storage.ArchiveKey(prefix)

	data, err := json.Marshal(update)
	if err != nil {
		return "", fmt.Errorf("encoding update: %w", err)
	}
	if err := storage.WriteObject(ctx, s.client, s.cfg.Storage.Bucket, key, "application/json", data); err != nil {
		return "", err
	}
	return key, nil
}

// persist applies the update when a database is configured.
func (s *Service) persist(ctx context.Context, update datacache.Update, summary *Summary) error {
	if !s.store.Available() {
		s.logger.Warn("Database not available, update not persisted")
		return nil
	}
	stats, err := s.store.Apply(ctx, update)
	if err != nil {
		return fmt.Errorf("persisting update: %w", err)
	}
	summary.Persisted = true
	summary.Stats = stats
	return nil
}

// DeleteBookmarks removes the bookmarks of the given contents.
func (s *Service) DeleteBookmarks(ctx context.Context, contentIDs []int64) (persistence.ApplyStats, error) {
	return s.store.Apply(ctx, datacache.BookmarkDeletions(contentIDs...))
}

// DeleteProgressions removes the progressions of the given contents.
func (s *Service) DeleteProgressions(ctx context.Context, contentIDs []int64) (persistence.ApplyStats, error) {
	return s.store.Apply(ctx, datacache.ProgressionDeletions(contentIDs...))
}

// MissingColumns reports cache columns the database lacks.
func (s *Service) MissingColumns(ctx context.Context) (map[string][]string, error) {
	return s.store.MissingColumns(ctx)
}
