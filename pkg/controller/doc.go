// Package controller contains HTTP middlewares used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the read-only API and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRegionScope: Resolves the region scope of the request from its host.
//   - WithCache: Serves GET responses from a key-value cache and stores qualifying misses.
package controller
