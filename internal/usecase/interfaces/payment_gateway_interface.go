package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// CreateOrder registers a checkout order with the provider and returns its
// identifier; the storefront hands that id to the hosted checkout widget.
// VerifyWebhookSignature authenticates provider webhook deliveries.

type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (providerOrderID string, err error)
	VerifyWebhookSignature(body []byte, signature string) bool
	KeyID() string
}
