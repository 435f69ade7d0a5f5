// Package adapters converts JSON:API resources into typed entities.
//
// Every recognized entity kind has an Adapter. An adapter receives one resource plus
// the complete relationship edge list of the document pass and is responsible for
// picking out the edges that concern its own subject (for instance a bookmark looks
// for its "content" edge). Join adapters reconstruct association entities
// (content-category, content-domain) from the edge list alone.
//
// # Decoding
//
// Attribute bags are decoded with mapstructure (weakly typed, RFC 3339 timestamps) and
// checked with go-playground/validator. A missing required attribute, a malformed
// value or an unresolvable resource id yields a *DecodingError, which matches
// ErrDecoding through errors.Is. Join adapters never fail.
//
// # Usage
//
//	set := adapters.Default()
//	content, err := set.Content.Process(resource, relationships)
//	joins := set.ContentCategory.Process(relationships)
package adapters
