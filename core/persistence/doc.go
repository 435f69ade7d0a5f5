// Package persistence writes normalized updates to the SQL cache.
//
// A Store applies a datacache.Update in a single transaction. Entities are upserted by
// primary key, so the same entity arriving on several merged pages collapses into one
// row holding the values of its last occurrence. Join rows and relationship edges are
// inserted with conflicts ignored. Deletion lists run after the upserts and remove
// bookmarks or progressions by content id.
//
// # Usage
//
//	store := persistence.NewStore(db, logger, cfg.Database.BatchSize)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	stats, err := store.Apply(ctx, update)
package persistence
