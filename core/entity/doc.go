// Package entity defines the identity and relationship primitives shared by the
// normalizer, the adapters and the persistence layer.
//
// # Identity
//
// An Identity is the pair (Kind, ID). Two identities are equal iff both parts match,
// which makes Identity usable directly as a map key. Every downstream consumer uses it
// as the reconciliation key for entities.
//
// # Relationships
//
// A Relationship is a directed, named edge (Name, From, To) extracted from a JSON:API
// relationship block. Edges are plain values; many edges may share the same From and
// Name (one-to-many relationships).
package entity
