package datacache

import (
	"errors"
	"testing"

	"datacache/core/adapters"
	"datacache/core/entity"
	"datacache/core/jsonapi"
	"datacache/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_PartitionsByKind(t *testing.T) {
	resources := []jsonapi.Resource{
		content("1", block("categories", ref("categories", "9")), block("domains", ref("domains", "4"))),
		category("9"),
		domain("4"),
		content("2"),
		{Type: "attachments", ID: "50", Relationships: []jsonapi.Relationship{block("content", ref("contents", "1"))}},
	}

	update, err := Normalize(resources)
	require.NoError(t, err)

	require.Len(t, update.Contents, 2)
	assert.Equal(t, int64(1), update.Contents[0].ID)
	assert.Equal(t, int64(2), update.Contents[1].ID)
	require.Len(t, update.Categories, 1)
	require.Len(t, update.Domains, 1)
	assert.Empty(t, update.Bookmarks)
	assert.Empty(t, update.Progressions)
	assert.Empty(t, update.Groups)

	assert.Equal(t, []models.ContentCategory{{ContentID: 1, CategoryID: 9}}, update.ContentCategories)
	assert.Equal(t, []models.ContentDomain{{ContentID: 1, DomainID: 4}}, update.ContentDomains)

	t.Run("UnrecognizedKindStillContributesEdges", func(t *testing.T) {
		require.Len(t, update.Relationships, 3)
		assert.Equal(t, entity.Relationship{
			Name: "content",
			From: entity.NewIdentity("attachments", 50),
			To:   entity.NewIdentity(entity.KindContent, 1),
		}, update.Relationships[2])
	})

	t.Run("DeletionListsAreEmpty", func(t *testing.T) {
		assert.NotNil(t, update.BookmarkDeletionContentIDs)
		assert.Empty(t, update.BookmarkDeletionContentIDs)
		assert.Empty(t, update.ProgressionDeletionContentIDs)
	})
}

func TestNormalize_AdaptersReceiveCompleteEdgeList(t *testing.T) {
	var seen [][]entity.Relationship
	set := adapters.Default()
	set.Category = adapters.Func[models.Category](func(res jsonapi.Resource, rels []entity.Relationship) (models.Category, error) {
		seen = append(seen, rels)
		id, _ := res.Identity()
		return models.Category{ID: id.ID}, nil
	})

	owner := entity.NewIdentity(entity.KindContent, 1)
	seeds := []OwnedRelationships{{Owner: &owner, Blocks: []jsonapi.Relationship{block("categories", ref("categories", "9"))}}}
	resources := []jsonapi.Resource{
		category("9"),
		category("10"),
		{Type: "attachments", ID: "1", Relationships: []jsonapi.Relationship{block("owner", ref("contents", "3"))}},
	}

	update, err := NewNormalizer(set).Normalize(resources, seeds...)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	for _, rels := range seen {
		assert.Equal(t, update.Relationships, rels)
		assert.Len(t, rels, 2)
	}
	assert.Equal(t, []models.ContentCategory{{ContentID: 1, CategoryID: 9}}, update.ContentCategories)
}

func TestNormalize_FirstFailureAbortsPass(t *testing.T) {
	calls := 0
	set := adapters.Default()
	set.Domain = adapters.Func[models.Domain](func(res jsonapi.Resource, _ []entity.Relationship) (models.Domain, error) {
		calls++
		return models.Domain{}, &adapters.DecodingError{Kind: entity.KindDomain, ID: res.ID, Err: errors.New("boom")}
	})

	resources := []jsonapi.Resource{content("1"), domain("4"), domain("5"), category("9")}

	update, err := NewNormalizer(set).Normalize(resources)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapters.ErrDecoding)
	assert.Equal(t, 1, calls)
	assert.True(t, update.IsEmpty())
}

func TestNormalize_Empty(t *testing.T) {
	update, err := Normalize(nil)
	require.NoError(t, err)
	assert.True(t, update.IsEmpty())
	assert.NotNil(t, update.Contents)
	assert.NotNil(t, update.Relationships)
}
