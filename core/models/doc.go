// Package models contains the typed entities produced by the adapters and stored by
// the persistence layer.
//
// Each struct doubles as a GORM model: its table name and column tags describe the
// cache schema, and its json tags describe the exported update format. Join entities
// (ContentCategory, ContentDomain) have no wire representation of their own; they are
// reconstructed from relationship edges.
package models
