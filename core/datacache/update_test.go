package datacache

import (
	"testing"

	"datacache/core/entity"
	"datacache/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateWith(contentIDs ...int64) Update {
	u := newUpdate()
	for _, id := range contentIDs {
		u.Contents = append(u.Contents, models.Content{ID: id})
		u.Relationships = append(u.Relationships, entity.Relationship{
			Name: "categories",
			From: entity.NewIdentity(entity.KindContent, id),
			To:   entity.NewIdentity(entity.KindCategory, id*10),
		})
		u.ContentCategories = append(u.ContentCategories, models.ContentCategory{ContentID: id, CategoryID: id * 10})
	}
	return u
}

func contentIDs(u Update) []int64 {
	ids := make([]int64, 0, len(u.Contents))
	for _, c := range u.Contents {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestMerge_PreservesOrder(t *testing.T) {
	u1 := updateWith(1, 2)
	u2 := updateWith(3, 4)

	merged := Merge(u1, u2)

	assert.Equal(t, []int64{1, 2, 3, 4}, contentIDs(merged))
	assert.Equal(t, append(append([]entity.Relationship{}, u1.Relationships...), u2.Relationships...), merged.Relationships)
	assert.Equal(t, []int64{1, 2}, contentIDs(u1), "operands are not modified")
}

func TestMerge_IsAssociative(t *testing.T) {
	a := updateWith(1)
	a.BookmarkDeletionContentIDs = []int64{7}
	b := updateWith(2, 3)
	b.Groups = []models.Group{{ID: 5}}
	c := updateWith(4)
	c.ProgressionDeletionContentIDs = []int64{8}
	c.BookmarkDeletionContentIDs = []int64{9}

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))

	assert.Equal(t, left, right)
	assert.Equal(t, []int64{1, 2, 3, 4}, contentIDs(left))
	assert.Equal(t, []int64{7, 9}, left.BookmarkDeletionContentIDs)
	assert.Equal(t, []int64{8}, left.ProgressionDeletionContentIDs)
}

func TestMerge_DoesNotAlias(t *testing.T) {
	a := Update{Contents: make([]models.Content, 1, 10)}
	b := updateWith(2)

	merged := a.Merge(b)
	merged.Contents[0].Name = "changed"

	assert.Empty(t, a.Contents[0].Name)
	require.Len(t, merged.Contents, 2)
}

func TestMerge_KeepsDuplicates(t *testing.T) {
	merged := Merge(updateWith(1), updateWith(1))
	assert.Equal(t, []int64{1, 1}, contentIDs(merged))
	assert.Len(t, merged.Relationships, 2)
}

func TestMergeAll(t *testing.T) {
	assert.True(t, MergeAll().IsEmpty())
	assert.Equal(t, []int64{1, 2, 3}, contentIDs(MergeAll(updateWith(1), updateWith(2), updateWith(3))))
}

func TestSummary(t *testing.T) {
	u := updateWith(1, 2)
	u.BookmarkDeletionContentIDs = []int64{3}

	s := u.Summary()
	assert.Equal(t, 2, s.Contents)
	assert.Equal(t, 2, s.Relationships)
	assert.Equal(t, 2, s.ContentCategories)
	assert.Equal(t, 1, s.BookmarkDeletionContentIDs)
	assert.False(t, u.IsEmpty())
}

func TestDeletionUpdates(t *testing.T) {
	bookmarks := BookmarkDeletions(3, 1)
	assert.Equal(t, []int64{3, 1}, bookmarks.BookmarkDeletionContentIDs)
	assert.Empty(t, bookmarks.ProgressionDeletionContentIDs)
	assert.Empty(t, bookmarks.Contents)

	progressions := ProgressionDeletions(2)
	merged := bookmarks.Merge(progressions)
	assert.Equal(t, []int64{3, 1}, merged.BookmarkDeletionContentIDs)
	assert.Equal(t, []int64{2}, merged.ProgressionDeletionContentIDs)
	assert.False(t, merged.IsEmpty())

	assert.True(t, BookmarkDeletions().IsEmpty())
	assert.NotNil(t, BookmarkDeletions().BookmarkDeletionContentIDs)
}
