// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application configuration.
//
// # Connect
//
// Connect opens the connection, tunes the pool and pings the server within the
// configured timeout. The service treats the database as optional: without it,
// documents can still be normalized but not persisted.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table. The persistence layer uses it to
// report cache tables that drifted from the models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "contents")
package database
