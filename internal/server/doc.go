// Package server provides HTTP server setup and initialization for the
// internal pages backend.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (recovery, request IDs, metrics, CORS, rate limiting)
//   - Resource bundle and blocking-IO worker pool
//   - Page source registration
//
// Server Lifecycle:
//  1. Load configuration from environment
//  2. Initialize logger (production or development)
//  3. Load the embedded resource bundle and start the worker pool
//  4. Register page sources for each internal hostname
//  5. Setup HTTP routes and middleware
//  6. Start HTTP server
//  7. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.New(cfg)
//	if err := srv.Run(cfg.Server.Host, cfg.Server.Port); err != nil {
//	    log.Fatal(err)
//	}
package server
