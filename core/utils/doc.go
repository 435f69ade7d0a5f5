// Package utils provides small conversion helpers shared across packages.
// It holds logic that doesn't fit into a domain-specific package, such as turning
// loosely typed wire identifiers into numeric entity ids.
package utils
