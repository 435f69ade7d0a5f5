// Package sync exposes document normalization and cache ingestion.
//
// The Service turns raw JSON:API documents into datacache updates and applies them to
// the SQL cache. Documents arrive either in a request body or from the object store,
// where a prefix holds the pages of one paginated listing:
//
//	documents/contents/page-001.json
//	documents/contents/page-002.json
//
// SyncPrefix loads all pages of a prefix, persists the merged update and archives it
// as JSON under the archive prefix. Concurrent syncs of the same prefix share one run.
//
// # Routes
//
//   - POST   /sync/documents          normalize and ingest the request body
//   - POST   /sync/objects?prefix=P   sync the pages stored under P
//   - DELETE /sync/bookmarks          remove bookmarks by content id
//   - DELETE /sync/progressions       remove progressions by content id
//   - GET    /sync/schema             list cache columns missing from the database
package sync
