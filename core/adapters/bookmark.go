package adapters

import (
	"errors"
	"time"

	"datacache/core/entity"
	"datacache/core/jsonapi"
	"datacache/core/models"
)

// BookmarkAdapter decodes "bookmarks" resources.
type BookmarkAdapter struct{}

type bookmarkAttributes struct {
	CreatedAt time.Time `mapstructure:"created_at" validate:"required"`
}

// Process decodes the bookmark. A bookmark must carry a "content" relationship.
func (BookmarkAdapter) Process(res jsonapi.Resource, relationships []entity.Relationship) (models.Bookmark, error) {
	id, err := identify(res, entity.KindBookmark)
	if err != nil {
		return models.Bookmark{}, err
	}

	var attrs bookmarkAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return models.Bookmark{}, err
	}

	rel, ok := entity.FirstFrom(relationships, id, "content", entity.KindContent)
	if !ok {
		return models.Bookmark{}, newDecodingError(res, "content", errors.New("missing content relationship"))
	}

	return models.Bookmark{
		ID:        id.ID,
		CreatedAt: attrs.CreatedAt,
		ContentID: rel.To.ID,
	}, nil
}
