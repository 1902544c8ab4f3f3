package ports

import "context"

// Mailer dispatches a single email. Implementations may deliver synchronously
// (SMTP) or enqueue for background delivery.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
