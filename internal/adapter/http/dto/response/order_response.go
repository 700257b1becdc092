package response

import (
	"time"

	"retroart/internal/domain/entities"
)

// OrderResponse is the admin-facing order projection. Field names match what
// the dashboard reads; the provider order id never leaves the backend.
type OrderResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	PaymentStatus string    `json:"paymentStatus"`
	WorkStatus    string    `json:"workStatus"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Email:         o.Email,
		ImageURL:      o.ImageURL,
		CreatedAt:     o.CreatedAt,
		PaymentStatus: string(o.PaymentStatus),
		WorkStatus:    string(o.WorkStatus),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
