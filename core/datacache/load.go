package datacache

import (
	"context"
	"errors"
	"fmt"

	"datacache/core/jsonapi"

	"golang.org/x/sync/errgroup"
)

// ErrNilDocument is returned when a nil document is loaded.
var ErrNilDocument = errors.New("nil document")

// LoadFrom loads a document with the default adapters.
func LoadFrom(doc *jsonapi.Document) (Update, error) {
	return defaultNormalizer.LoadFrom(doc)
}

// LoadFrom normalizes the primary data on its own, then the included resources seeded
// with the relationship blocks of the primary data, and merges the two (data first).
// Seeding keeps edges declared on primary resources available to the included pass,
// which is where most join entities point (content -> categories, content -> domains).
func (n *Normalizer) LoadFrom(doc *jsonapi.Document) (Update, error) {
	if doc == nil {
		return Update{}, ErrNilDocument
	}

	data, err := n.Normalize(doc.Data)
	if err != nil {
		return Update{}, fmt.Errorf("normalizing data: %w", err)
	}

	included, err := n.Normalize(doc.Included, SeedsFrom(doc.Data)...)
	if err != nil {
		return Update{}, fmt.Errorf("normalizing included: %w", err)
	}

	return data.Merge(included), nil
}

// LoadPages loads paginated documents with the default adapters.
func LoadPages(ctx context.Context, docs []*jsonapi.Document, concurrency int) (Update, error) {
	return defaultNormalizer.LoadPages(ctx, docs, concurrency)
}

// LoadPages loads every page concurrently (at most concurrency at a time, unbounded
// when concurrency <= 0) and merges the results in page order, so the outcome equals
// loading and merging the pages one after another. The first failure wins.
func (n *Normalizer) LoadPages(ctx context.Context, docs []*jsonapi.Document, concurrency int) (Update, error) {
	updates := make([]Update, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			update, err := n.LoadFrom(doc)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			updates[i] = update
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Update{}, err
	}

	return MergeAll(updates...), nil
}
