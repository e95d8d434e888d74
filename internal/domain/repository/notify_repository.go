package repository

import "context"

// Notifier defines a push channel for the plain-text report. Senders are
// best-effort: a delivery failure is returned for logging but must never
// fail the report itself.
type Notifier interface {
	Name() string
	Send(ctx context.Context, message string) error
}
