package datacache

import (
	"datacache/core/adapters"
	"datacache/core/entity"
	"datacache/core/jsonapi"
)

// Normalizer turns resources into an Update using a set of per-kind adapters.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	adapters adapters.Set
}

// NewNormalizer returns a normalizer backed by the given adapters.
func NewNormalizer(set adapters.Set) *Normalizer {
	return &Normalizer{adapters: set}
}

var defaultNormalizer = NewNormalizer(adapters.Default())

// Normalize normalizes resources with the default adapters.
func Normalize(resources []jsonapi.Resource, seeds ...OwnedRelationships) (Update, error) {
	return defaultNormalizer.Normalize(resources, seeds...)
}

// Normalize builds the full edge list from resources and seeds, converts every
// resource of a recognized kind with its adapter and derives the join collections
// from the edge list. Resources of unrecognized kinds are ignored. The first adapter
// failure is returned and no partial update is produced.
func (n *Normalizer) Normalize(resources []jsonapi.Resource, seeds ...OwnedRelationships) (Update, error) {
	relationships := ExtractRelationships(resources, seeds)

	update := newUpdate()
	for _, res := range resources {
		if err := n.dispatch(&update, res, relationships); err != nil {
			return Update{}, err
		}
	}

	update.ContentCategories = append(update.ContentCategories, n.adapters.ContentCategory.Process(relationships)...)
	update.ContentDomains = append(update.ContentDomains, n.adapters.ContentDomain.Process(relationships)...)
	update.Relationships = relationships

	return update, nil
}

func (n *Normalizer) dispatch(update *Update, res jsonapi.Resource, relationships []entity.Relationship) error {
	switch res.Kind() {
	case entity.KindContent:
		return collect(&update.Contents, n.adapters.Content, res, relationships)
	case entity.KindBookmark:
		return collect(&update.Bookmarks, n.adapters.Bookmark, res, relationships)
	case entity.KindProgression:
		return collect(&update.Progressions, n.adapters.Progression, res, relationships)
	case entity.KindDomain:
		return collect(&update.Domains, n.adapters.Domain, res, relationships)
	case entity.KindGroup:
		return collect(&update.Groups, n.adapters.Group, res, relationships)
	case entity.KindCategory:
		return collect(&update.Categories, n.adapters.Category, res, relationships)
	default:
		// Unknown kinds are tolerated so new API types don't break older clients.
		return nil
	}
}

func collect[T any](dst *[]T, adapter adapters.Adapter[T], res jsonapi.Resource, relationships []entity.Relationship) error {
	item, err := adapter.Process(res, relationships)
	if err != nil {
		return err
	}
	*dst = append(*dst, item)
	return nil
}
