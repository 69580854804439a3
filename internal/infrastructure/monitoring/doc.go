// Package monitoring provides Prometheus metrics for the internal pages
// backend.
//
// Metrics cover three layers:
//   - HTTP: request counts, durations, and response sizes per route
//   - Pages: per-host request outcomes, assembly latency, and body sizes
//   - Workers: blocking-IO pool queue depth and utilization
//
// The fallback counter tracks every request answered with placeholder or
// bundled content instead of its preferred source, labeled by host and
// reason. Spikes there usually mean a missing on-disk document or a
// component that failed to mount.
//
// Metrics are exposed on /metrics via the standard promhttp handler.
package monitoring
