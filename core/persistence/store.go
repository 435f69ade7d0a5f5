package persistence

import (
	"context"
	"errors"
	"fmt"

	"datacache/core/database"
	"datacache/core/datacache"
	"datacache/core/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultBatchSize is used when the store is created with a non-positive batch size.
const DefaultBatchSize = 500

// ErrNoDatabase is returned when a store has no connection to write to.
var ErrNoDatabase = errors.New("database not available")

// ApplyStats counts the rows an Apply call wrote.
type ApplyStats struct {
	// Upserted is the number of distinct entities inserted or updated.
	Upserted int `json:"upserted"`
	// Linked is the number of distinct join rows and edges submitted.
	Linked int `json:"linked"`
	// Deleted is the number of bookmarks and progressions removed.
	Deleted int64 `json:"deleted"`
}

// Store persists updates through GORM.
type Store struct {
	db        *gorm.DB
	logger    *zap.Logger
	batchSize int
}

// NewStore creates a store. A nil db yields a store whose writes fail with ErrNoDatabase.
func NewStore(db *gorm.DB, logger *zap.Logger, batchSize int) *Store {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger, batchSize: batchSize}
}

// Available reports whether the store has a database connection.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Migrate creates or updates every cache table.
func (s *Store) Migrate(ctx context.Context) error {
	if !s.Available() {
		return ErrNoDatabase
	}
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrating cache tables: %w", err)
	}
	return nil
}

// Apply writes the update in one transaction. Any failure rolls back the whole update.
func (s *Store) Apply(ctx context.Context, update datacache.Update) (ApplyStats, error) {
	if !s.Available() {
		return ApplyStats{}, ErrNoDatabase
	}
	if update.IsEmpty() {
		return ApplyStats{}, nil
	}

	var stats ApplyStats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stats = ApplyStats{}

		upserts := []struct {
			table string
			write func() (int, error)
		}{
			{"contents", func() (int, error) {
				return upsert(tx, update.Contents, models.Content.Identity, s.batchSize)
			}},
			{"domains", func() (int, error) {
				return upsert(tx, update.Domains, models.Domain.Identity, s.batchSize)
			}},
			{"categories", func() (int, error) {
				return upsert(tx, update.Categories, models.Category.Identity, s.batchSize)
			}},
			{"groups", func() (int, error) {
				return upsert(tx, update.Groups, models.Group.Identity, s.batchSize)
			}},
			{"bookmarks", func() (int, error) {
				return upsert(tx, update.Bookmarks, models.Bookmark.Identity, s.batchSize)
			}},
			{"progressions", func() (int, error) {
				return upsert(tx, update.Progressions, models.Progression.Identity, s.batchSize)
			}},
		}
		for _, u := range upserts {
			n, err := u.write()
			if err != nil {
				return fmt.Errorf("upserting %s: %w", u.table, err)
			}
			stats.Upserted += n
		}

		n, err := link(tx, update.ContentCategories, s.batchSize)
		if err != nil {
			return fmt.Errorf("linking content categories: %w", err)
		}
		stats.Linked += n

		n, err = link(tx, update.ContentDomains, s.batchSize)
		if err != nil {
			return fmt.Errorf("linking content domains: %w", err)
		}
		stats.Linked += n

		edges := make([]models.Relationship, 0, len(update.Relationships))
		for _, rel := range update.Relationships {
			edges = append(edges, models.NewRelationship(rel))
		}
		n, err = link(tx, edges, s.batchSize)
		if err != nil {
			return fmt.Errorf("storing relationships: %w", err)
		}
		stats.Linked += n

		deleted, err := deleteByContent(tx, &models.Bookmark{}, update.BookmarkDeletionContentIDs)
		if err != nil {
			return fmt.Errorf("deleting bookmarks: %w", err)
		}
		stats.Deleted += deleted

		deleted, err = deleteByContent(tx, &models.Progression{}, update.ProgressionDeletionContentIDs)
		if err != nil {
			return fmt.Errorf("deleting progressions: %w", err)
		}
		stats.Deleted += deleted
		return nil
	})
	if err != nil {
		return ApplyStats{}, err
	}

	s.logger.Debug("Applied update",
		zap.Int("upserted", stats.Upserted),
		zap.Int("linked", stats.Linked),
		zap.Int64("deleted", stats.Deleted),
	)
	return stats, nil
}

// upsert writes rows keyed by identity, keeping the last occurrence of each key.
func upsert[T any, K comparable](tx *gorm.DB, rows []T, key func(T) K, batchSize int) (int, error) {
	rows = lastByKey(rows, key)
	if len(rows) == 0 {
		return 0, nil
	}
	err := tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, batchSize).Error
	return len(rows), err
}

// link inserts rows whose whole value is the key, ignoring rows that already exist.
func link[T comparable](tx *gorm.DB, rows []T, batchSize int) (int, error) {
	rows = lastByKey(rows, func(row T) T { return row })
	if len(rows) == 0 {
		return 0, nil
	}
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, batchSize).Error
	return len(rows), err
}

func deleteByContent(tx *gorm.DB, model any, contentIDs []int64) (int64, error) {
	if len(contentIDs) == 0 {
		return 0, nil
	}
	res := tx.Where("content_id IN ?", contentIDs).Delete(model)
	return res.RowsAffected, res.Error
}

// lastByKey collapses rows sharing a key. The surviving row sits at the key's first
// position and carries the values of its last occurrence.
func lastByKey[T any, K comparable](rows []T, key func(T) K) []T {
	if len(rows) < 2 {
		return rows
	}
	index := make(map[K]int, len(rows))
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if i, ok := index[k]; ok {
			out[i] = row
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}
	return out
}

// MissingColumns compares every cache table against its model and returns, per table,
// the model columns the live table lacks. Tables that match are omitted.
func (s *Store) MissingColumns(ctx context.Context) (map[string][]string, error) {
	if !s.Available() {
		return nil, ErrNoDatabase
	}
	db := s.db.WithContext(ctx)

	missing := make(map[string][]string)
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model %T: %w", model, err)
		}

		columns, err := database.GetTableColumns(db, stmt.Schema.Table)
		if err != nil {
			return nil, err
		}
		live := make(map[string]bool, len(columns))
		for _, col := range columns {
			live[col.Field] = true
		}

		for _, name := range stmt.Schema.DBNames {
			if !live[name] {
				missing[stmt.Schema.Table] = append(missing[stmt.Schema.Table], name)
			}
		}
	}
	return missing, nil
}
