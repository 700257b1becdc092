package entities

import "time"

// PaymentStatus tells whether the payment provider has confirmed payment.
//
// Transitions are driven exclusively by the provider webhook; nothing else in
// the system may flip an order to paid.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// WorkStatus is the fulfillment-side progress of an order.
//
// The workflow is ordered: pending -> in-progress -> completed. Only forward
// moves are legal; skipping in-progress is allowed (an operator may complete a
// pending order directly).

type WorkStatus string

const (
	WorkStatusPending    WorkStatus = "pending"
	WorkStatusInProgress WorkStatus = "in-progress"
	WorkStatusCompleted  WorkStatus = "completed"
)

var workStatusRank = map[WorkStatus]int{
	WorkStatusPending:    0,
	WorkStatusInProgress: 1,
	WorkStatusCompleted:  2,
}

func (s WorkStatus) Valid() bool {
	_, ok := workStatusRank[s]
	return ok
}

// CanTransitionTo reports whether next is a legal forward move from s.
func (s WorkStatus) CanTransitionTo(next WorkStatus) bool {
	from, ok := workStatusRank[s]
	if !ok {
		return false
	}
	to, ok := workStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// MaxImageSize is the upload limit for source images (5 MiB).
const MaxImageSize = 5 << 20

// Order is one customer request for a retro-art conversion, tracked through
// payment and fulfillment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (razorpay_order_id-index): razorpay_order_id
//
// ProviderOrderID links the order to the Razorpay order created at submission;
// the payment webhook reconciles through it.

type Order struct {
	ID              string        `json:"id"`
	Email           string        `json:"email"`
	ImageURL        string        `json:"imageUrl"`
	CreatedAt       time.Time     `json:"createdAt"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	WorkStatus      WorkStatus    `json:"workStatus"`
	ProviderOrderID string        `json:"razorpayOrderId,omitempty"`
}
