// Package notify delivers alert notifications to an external sink. Retry
// and rate-limit policy live here, at the edge, not in the alert engine.
package notify

import "context"

// Sink is the outbound notification contract: one fire-and-forget send per
// notification.
type Sink interface {
	Send(ctx context.Context, title, content string) error
}

// NoopSink discards notifications. Used when no webhook is configured.
type NoopSink struct{}

func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (s *NoopSink) Send(ctx context.Context, title, content string) error {
	return nil
}
