package datacache

import (
	"datacache/core/entity"
	"datacache/core/jsonapi"
)

// OwnedRelationships pairs relationship blocks with the subject that declared them.
// Owner is nil when the subject has no resolvable identity; such pairs contribute no
// edges.
type OwnedRelationships struct {
	Owner  *entity.Identity
	Blocks []jsonapi.Relationship
}

// SeedsFrom returns one OwnedRelationships per resource, in resource order.
func SeedsFrom(resources []jsonapi.Resource) []OwnedRelationships {
	seeds := make([]OwnedRelationships, 0, len(resources))
	for _, res := range resources {
		seeds = append(seeds, ownedBy(res))
	}
	return seeds
}

func ownedBy(res jsonapi.Resource) OwnedRelationships {
	owned := OwnedRelationships{Blocks: res.Relationships}
	if id, ok := res.Identity(); ok {
		owned.Owner = &id
	}
	return owned
}

// ExtractRelationships flattens relationship blocks into edges. Seed edges come first
// in seed order, followed by the resources' own edges in resource order; within a
// subject, block order then reference order. References without a resolvable identity
// are skipped. No deduplication is performed.
func ExtractRelationships(resources []jsonapi.Resource, seeds []OwnedRelationships) []entity.Relationship {
	edges := []entity.Relationship{}
	for _, seed := range seeds {
		edges = appendEdges(edges, seed)
	}
	for _, res := range resources {
		edges = appendEdges(edges, ownedBy(res))
	}
	return edges
}

func appendEdges(edges []entity.Relationship, owned OwnedRelationships) []entity.Relationship {
	if owned.Owner == nil {
		return edges
	}
	for _, block := range owned.Blocks {
		for _, ref := range block.Data {
			to, ok := ref.Identity()
			if !ok {
				continue
			}
			edges = append(edges, entity.Relationship{
				Name: block.Name,
				From: *owned.Owner,
				To:   to,
			})
		}
	}
	return edges
}
