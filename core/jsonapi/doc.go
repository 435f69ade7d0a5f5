// Package jsonapi parses JSON:API documents into resource descriptors.
//
// A Document exposes its primary resources (Data) and side-loaded resources
// (Included) in document order. Each Resource carries its type tag, raw id, an
// opaque attribute bag and its relationship blocks.
//
// # Ordering
//
// Relationship blocks are kept in the order they appear on the wire. The standard
// library decoder drops object key order, so the parser walks the document with
// gjson, which iterates objects in document order.
//
// # Identities
//
// Resource.Identity and ResourceIdentifier.Identity resolve an entity.Identity only
// when the type is non-empty and the id is an integer. Callers treat unresolvable
// identities as "skip", never as an error.
//
// # Usage
//
//	doc, err := jsonapi.Parse(body)
//	if err != nil {
//	    return err
//	}
//	for _, res := range doc.Data {
//	    id, ok := res.Identity()
//	    ...
//	}
package jsonapi
