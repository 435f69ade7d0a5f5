// Package datacache normalizes JSON:API documents into typed, flat update records.
//
// The package is a set of pure transforms: nothing is cached between calls and every
// function takes all of its context as arguments, so independent documents can be
// normalized concurrently without coordination.
//
// # Components
//
//   - ExtractRelationships: flattens relationship blocks into entity.Relationship edges.
//     Ownership is explicit: OwnedRelationships pairs a subject identity with the blocks
//     it declared, so blocks from one document section can seed another.
//   - Normalizer: dispatches resources to the per-kind adapters and derives the join
//     collections from the full edge list. All-or-nothing: the first adapter failure
//     aborts the pass.
//   - Update.Merge: associative a-then-b concatenation of every collection.
//   - LoadFrom: normalizes "data", then "included" seeded with the primary resources'
//     relationship blocks, and merges the two.
//   - LoadPages: loads paginated documents concurrently and merges them in page order.
//
// # Duplicates
//
// Neither the normalizer nor the merger deduplicates. The same entity may appear more
// than once (e.g. a paginated refetch); the persistence layer reconciles by identity.
//
// # Usage
//
//	doc, err := jsonapi.Parse(body)
//	if err != nil {
//	    return err
//	}
//	update, err := datacache.LoadFrom(doc)
//	if err != nil {
//	    return err // no partial update is ever returned
//	}
package datacache
