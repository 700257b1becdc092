package storefront

import "errors"

// ErrAttemptResolved is returned when a terminal event is reported on an
// attempt that already resolved.
var ErrAttemptResolved = errors.New("checkout attempt already resolved")

const (
	widgetName        = "Retro Art Conversion"
	widgetDescription = "Custom retro art conversion service"
	widgetThemeColor  = "#EA580C"
)

// WidgetOptions initializes the hosted checkout widget.
type WidgetOptions struct {
	Key          string
	Amount       int64
	Currency     string
	OrderID      string
	Name         string
	Description  string
	PrefillEmail string
	ThemeColor   string
}

// CheckoutAttempt is one short-lived pass through the hosted payment widget.
// The widget reports back exactly one of three terminal events: Succeed, Fail
// or Dismiss. Reporting a second event is an error; the caller re-enables
// submission once Resolved reports true.
type CheckoutAttempt struct {
	params   CheckoutParams
	email    string
	resolved bool
}

func newCheckoutAttempt(params CheckoutParams, email string) *CheckoutAttempt {
	return &CheckoutAttempt{params: params, email: email}
}

// Options is what the widget is opened with. OrderID is the provider's order
// reference, not the internal one.
func (a *CheckoutAttempt) Options() WidgetOptions {
	return WidgetOptions{
		Key:          a.params.RazorpayKeyID,
		Amount:       a.params.Amount,
		Currency:     a.params.Currency,
		OrderID:      a.params.RazorpayOrderID,
		Name:         widgetName,
		Description:  widgetDescription,
		PrefillEmail: a.email,
		ThemeColor:   widgetThemeColor,
	}
}

// Succeed resolves the attempt as paid and returns the destination the
// customer navigates to, carrying the internal order id.
func (a *CheckoutAttempt) Succeed() (string, error) {
	if a.resolved {
		return "", ErrAttemptResolved
	}
	a.resolved = true
	return "/success?order_id=" + a.params.InternalOrderID, nil
}

// Fail resolves the attempt with the provider-reported reason.
func (a *CheckoutAttempt) Fail(reason, description string) error {
	if a.resolved {
		return ErrAttemptResolved
	}
	a.resolved = true
	return &PaymentError{Reason: reason, Description: description}
}

// Dismiss resolves the attempt as abandoned by the customer.
func (a *CheckoutAttempt) Dismiss() error {
	if a.resolved {
		return ErrAttemptResolved
	}
	a.resolved = true
	return nil
}

func (a *CheckoutAttempt) Resolved() bool {
	return a.resolved
}
