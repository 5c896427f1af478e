package delivery

import "context"

// Email is one outbound message.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer sends composed emails over a transport. Implementations must make
// exactly one attempt per call; retry policy belongs to the caller, and the
// dispatcher deliberately has none.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}
