package datacache

import (
	"slices"

	"datacache/core/entity"
	"datacache/core/models"
)

// Update is the flat, typed result of normalizing one or more documents.
// An Update is treated as immutable once built; Merge always allocates new slices.
type Update struct {
	Contents          []models.Content         `json:"contents"`
	Bookmarks         []models.Bookmark        `json:"bookmarks"`
	Progressions      []models.Progression     `json:"progressions"`
	Domains           []models.Domain          `json:"domains"`
	Groups            []models.Group           `json:"groups"`
	Categories        []models.Category        `json:"categories"`
	ContentCategories []models.ContentCategory `json:"content_categories"`
	ContentDomains    []models.ContentDomain   `json:"content_domains"`
	Relationships     []entity.Relationship    `json:"relationships"`

	// Deletion lists are never populated by normalization. Callers that know about
	// removals build an Update carrying them and merge it in.
	BookmarkDeletionContentIDs    []int64 `json:"bookmark_deletion_content_ids"`
	ProgressionDeletionContentIDs []int64 `json:"progression_deletion_content_ids"`
}

// Merge returns a new update holding u's elements followed by other's in every
// collection, including the deletion lists. It performs no deduplication.
func (u Update) Merge(other Update) Update {
	return Update{
		Contents:                      concat(u.Contents, other.Contents),
		Bookmarks:                     concat(u.Bookmarks, other.Bookmarks),
		Progressions:                  concat(u.Progressions, other.Progressions),
		Domains:                       concat(u.Domains, other.Domains),
		Groups:                        concat(u.Groups, other.Groups),
		Categories:                    concat(u.Categories, other.Categories),
		ContentCategories:             concat(u.ContentCategories, other.ContentCategories),
		ContentDomains:                concat(u.ContentDomains, other.ContentDomains),
		Relationships:                 concat(u.Relationships, other.Relationships),
		BookmarkDeletionContentIDs:    concat(u.BookmarkDeletionContentIDs, other.BookmarkDeletionContentIDs),
		ProgressionDeletionContentIDs: concat(u.ProgressionDeletionContentIDs, other.ProgressionDeletionContentIDs),
	}
}

// Merge combines a and b; see Update.Merge.
func Merge(a, b Update) Update {
	return a.Merge(b)
}

// MergeAll folds updates left to right. With no arguments it returns an empty update.
func MergeAll(updates ...Update) Update {
	merged := newUpdate()
	for _, u := range updates {
		merged = merged.Merge(u)
	}
	return merged
}

// newUpdate returns an update whose collections are all empty but non-nil.
func newUpdate() Update {
	return Update{
		Contents:                      []models.Content{},
		Bookmarks:                     []models.Bookmark{},
		Progressions:                  []models.Progression{},
		Domains:                       []models.Domain{},
		Groups:                        []models.Group{},
		Categories:                    []models.Category{},
		ContentCategories:             []models.ContentCategory{},
		ContentDomains:                []models.ContentDomain{},
		Relationships:                 []entity.Relationship{},
		BookmarkDeletionContentIDs:    []int64{},
		ProgressionDeletionContentIDs: []int64{},
	}
}

// IsEmpty reports whether the update carries nothing at all.
func (u Update) IsEmpty() bool {
	return u.Summary() == Summary{}
}

// Summary counts the elements of every collection.
type Summary struct {
	Contents                      int `json:"contents"`
	Bookmarks                     int `json:"bookmarks"`
	Progressions                  int `json:"progressions"`
	Domains                       int `json:"domains"`
	Groups                        int `json:"groups"`
	Categories                    int `json:"categories"`
	ContentCategories             int `json:"content_categories"`
	ContentDomains                int `json:"content_domains"`
	Relationships                 int `json:"relationships"`
	BookmarkDeletionContentIDs    int `json:"bookmark_deletions"`
	ProgressionDeletionContentIDs int `json:"progression_deletions"`
}

// Summary returns the per-collection counts of u.
func (u Update) Summary() Summary {
	return Summary{
		Contents:                      len(u.Contents),
		Bookmarks:                     len(u.Bookmarks),
		Progressions:                  len(u.Progressions),
		Domains:                       len(u.Domains),
		Groups:                        len(u.Groups),
		Categories:                    len(u.Categories),
		ContentCategories:             len(u.ContentCategories),
		ContentDomains:                len(u.ContentDomains),
		Relationships:                 len(u.Relationships),
		BookmarkDeletionContentIDs:    len(u.BookmarkDeletionContentIDs),
		ProgressionDeletionContentIDs: len(u.ProgressionDeletionContentIDs),
	}
}

// concat never returns a slice sharing a backing array with its inputs, and never
// returns nil, so merged updates encode as empty JSON arrays.
func concat[T any](a, b []T) []T {
	out := slices.Concat(a, b)
	if out == nil {
		out = []T{}
	}
	return out
}

// BookmarkDeletions returns an update that removes the bookmarks of the given contents
// when applied.
func BookmarkDeletions(contentIDs ...int64) Update {
	u := newUpdate()
	u.BookmarkDeletionContentIDs = concat(contentIDs, nil)
	return u
}

// ProgressionDeletions returns an update that removes the progressions of the given
// contents when applied.
func ProgressionDeletions(contentIDs ...int64) Update {
	u := newUpdate()
	u.ProgressionDeletionContentIDs = concat(contentIDs, nil)
	return u
}
