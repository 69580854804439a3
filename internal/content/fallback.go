package content

// FallbackRecorder counts requests answered with placeholder or bundled
// content instead of their preferred source. Satisfied by the monitoring
// metrics collector.
type FallbackRecorder interface {
	RecordFallback(host, reason string)
}

// NopFallbackRecorder discards fallback events.
type NopFallbackRecorder struct{}

// RecordFallback implements FallbackRecorder.
func (NopFallbackRecorder) RecordFallback(host, reason string) {}
