package interfaces

import (
	"context"

	"retroart/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups that miss return a zero-value Order and a nil error; callers decide
// whether absence is an error. List returns the full collection; the admin
// dashboard holds it in memory, there is no pagination.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateWorkStatus(ctx context.Context, id string, status entities.WorkStatus) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error)
}
