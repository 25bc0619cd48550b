package notify

import "context"

// Sender delivers transactional mail. Failures are best-effort for callers:
// no API operation fails because an email could not be sent.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NopSender is used when no mail provider is configured.
type NopSender struct{}

func (NopSender) Send(context.Context, string, string, string) error { return nil }
