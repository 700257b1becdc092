package storefront

import "fmt"

// Each error type tells the caller where the failure originated. Every one of
// them is recoverable; nothing in this package retries on its own.

// ValidationError is a bad or missing local input, raised before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubmissionError is a non-success response from the order-creation endpoint.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string { return e.Message }

// FetchError is a non-success response from the order-listing endpoint.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string { return e.Message }

// UpdateError is a non-success response from the work-status update endpoint.
type UpdateError struct {
	Message string
}

func (e *UpdateError) Error() string { return e.Message }

// AuthError is a rejected admin password.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// PaymentError is a provider-reported checkout failure.
type PaymentError struct {
	Reason      string
	Description string
}

func (e *PaymentError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("payment failed: %s", e.Reason)
	}
	return fmt.Sprintf("payment failed: %s: %s", e.Reason, e.Description)
}
