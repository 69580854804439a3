// Package middleware provides HTTP middleware for the pages backend.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing restricted to read methods
//   - RateLimit: Per-IP token bucket rate limiting
//   - GlobalRateLimit: Shared token bucket across all clients
//   - RequestID: Per-request identifier for log correlation
package middleware
