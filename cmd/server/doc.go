// Package main is the entry point for the Lumen internal pages server.
//
// This application serves the browser's built-in informational pages:
// the internal URL directory, credits, terms of service, OS credits,
// container runtime credits, and the Linux proxy configuration notice.
//
// The server provides:
//   - Page content endpoints under /pages/<host>
//   - Diagnostics endpoints for registered hosts and installed locales
//   - Prometheus metrics
//   - Rate limiting and security headers
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8600 -locale en-US
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
