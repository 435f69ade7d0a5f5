// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for server settings: the HTTP port, the API key and the
// maximum accepted body size for uploaded documents.
package server
