package entity

import "fmt"

// Kind is the JSON:API resource type tag of an entity.
type Kind string

const (
	KindContent     Kind = "contents"
	KindBookmark    Kind = "bookmarks"
	KindProgression Kind = "progressions"
	KindDomain      Kind = "domains"
	KindGroup       Kind = "groups"
	KindCategory    Kind = "categories"
)

// Kinds lists the recognized entity kinds in collection order.
var Kinds = []Kind{
	KindContent,
	KindBookmark,
	KindProgression,
	KindDomain,
	KindGroup,
	KindCategory,
}

// Recognized reports whether k maps to a typed entity collection.
func (k Kind) Recognized() bool {
	switch k {
	case KindContent, KindBookmark, KindProgression, KindDomain, KindGroup, KindCategory:
		return true
	default:
		return false
	}
}

// Identity identifies one entity across documents and collections.
type Identity struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id"`
}

// NewIdentity returns the identity for the given kind and id.
func NewIdentity(kind Kind, id int64) Identity {
	return Identity{Kind: kind, ID: id}
}

// Is reports whether the identity belongs to the given kind.
func (i Identity) Is(kind Kind) bool {
	return i.Kind == kind
}

func (i Identity) String() string {
	return fmt.Sprintf("%s:%d", i.Kind, i.ID)
}
