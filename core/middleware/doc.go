// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: Tags every request with a Request ID (RayID), injecting it into the
//     context and response headers for tracing.
//
// RayID is registered first so every later log line carries the id.
package middleware
