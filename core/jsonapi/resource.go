package jsonapi

import (
	"datacache/core/entity"
	"datacache/core/utils"
)

// Document is a parsed JSON:API top-level document.
type Document struct {
	// Data holds the primary resources. A single-resource document yields one element.
	Data []Resource
	// Included holds side-loaded resources referenced by the primary data.
	Included []Resource
	// Links holds top-level links (self, next, prev, ...), flattened to their href.
	Links map[string]string
	// Meta holds the top-level meta object.
	Meta map[string]any
}

// Resource is the normalized view of one JSON:API resource object.
type Resource struct {
	Type          string
	ID            string
	Attributes    map[string]any
	Relationships []Relationship
}

// Relationship is one named relationship block of a resource.
type Relationship struct {
	Name string
	Data []ResourceIdentifier
}

// ResourceIdentifier is the identity-only stub used inside relationship blocks.
type ResourceIdentifier struct {
	Type string
	ID   string
}

// Identity resolves the entity identity of the reference.
func (r ResourceIdentifier) Identity() (entity.Identity, bool) {
	return resolveIdentity(r.Type, r.ID)
}

// Identity resolves the entity identity of the resource.
func (r Resource) Identity() (entity.Identity, bool) {
	return resolveIdentity(r.Type, r.ID)
}

// Kind returns the resource type as an entity kind.
func (r Resource) Kind() entity.Kind {
	return entity.Kind(r.Type)
}

// Identifier returns the identity-only stub of the resource.
func (r Resource) Identifier() ResourceIdentifier {
	return ResourceIdentifier{Type: r.Type, ID: r.ID}
}

// Attribute returns a single attribute value.
func (r Resource) Attribute(key string) (any, bool) {
	v, ok := r.Attributes[key]
	return v, ok
}

// Relationship returns the block with the given name.
func (r Resource) Relationship(name string) (Relationship, bool) {
	for _, rel := range r.Relationships {
		if rel.Name == name {
			return rel, true
		}
	}
	return Relationship{}, false
}

// NextLink returns the pagination link to the following page, if any.
func (d *Document) NextLink() string {
	return d.Links["next"]
}

// TotalResultCount returns meta.total_result_count when the server reports it.
func (d *Document) TotalResultCount() (int64, bool) {
	return utils.ParseID(d.Meta["total_result_count"])
}

func resolveIdentity(typ, id string) (entity.Identity, bool) {
	if typ == "" {
		return entity.Identity{}, false
	}
	n, ok := utils.ParseID(id)
	if !ok {
		return entity.Identity{}, false
	}
	return entity.NewIdentity(entity.Kind(typ), n), true
}
