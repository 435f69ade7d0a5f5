package adapters

import (
	"datacache/core/entity"
	"datacache/core/jsonapi"
	"datacache/core/models"
)

// Adapter converts a single resource into a typed entity of kind T.
type Adapter[T any] interface {
	Process(resource jsonapi.Resource, relationships []entity.Relationship) (T, error)
}

// JoinAdapter derives association entities from relationship edges.
type JoinAdapter[J any] interface {
	Process(relationships []entity.Relationship) []J
}

// Func adapts an ordinary function to the Adapter interface.
type Func[T any] func(resource jsonapi.Resource, relationships []entity.Relationship) (T, error)

// Process calls f(resource, relationships).
func (f Func[T]) Process(resource jsonapi.Resource, relationships []entity.Relationship) (T, error) {
	return f(resource, relationships)
}

// Set bundles one adapter per recognized kind plus the join adapters.
type Set struct {
	Content     Adapter[models.Content]
	Bookmark    Adapter[models.Bookmark]
	Progression Adapter[models.Progression]
	Domain      Adapter[models.Domain]
	Group       Adapter[models.Group]
	Category    Adapter[models.Category]

	ContentCategory JoinAdapter[models.ContentCategory]
	ContentDomain   JoinAdapter[models.ContentDomain]
}

// Default returns the adapters for the content API.
func Default() Set {
	return Set{
		Content:         ContentAdapter{},
		Bookmark:        BookmarkAdapter{},
		Progression:     ProgressionAdapter{},
		Domain:          DomainAdapter{},
		Group:           GroupAdapter{},
		Category:        CategoryAdapter{},
		ContentCategory: ContentCategoryAdapter{},
		ContentDomain:   ContentDomainAdapter{},
	}
}
