package interfaces

import "context"

// IMailer sends the customer-facing notification mails.

type IMailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
