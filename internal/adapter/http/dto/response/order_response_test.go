package response

import (
	"testing"
	"time"

	"retroart/internal/domain/entities"
	"retroart/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:              "o1",
		Email:           "a@b.com",
		ImageURL:        "https://bucket/o1.png",
		CreatedAt:       now,
		PaymentStatus:   entities.PaymentStatusPaid,
		WorkStatus:      entities.WorkStatusInProgress,
		ProviderOrderID: "rzp_1",
	}

	got := FromOrder(o)
	if got.ID != "o1" || got.Email != "a@b.com" || got.ImageURL != "https://bucket/o1.png" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt %v, got %v", now, got.CreatedAt)
	}
	if got.PaymentStatus != "paid" || got.WorkStatus != "in-progress" {
		t.Fatalf("unexpected statuses: %+v", got)
	}
}

func TestFromOrders_PreservesOrder(t *testing.T) {
	orders := []entities.Order{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := FromOrders(orders)
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	for i, id := range []string{"a", "b", "c"} {
		if got[i].ID != id {
			t.Fatalf("expected %q at %d, got %q", id, i, got[i].ID)
		}
	}
	if got := FromOrders(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromSubmitResult(t *testing.T) {
	res := usecase.SubmitResult{
		Order:           entities.Order{ID: "o1"},
		ProviderOrderID: "rzp_1",
		Amount:          400,
		Currency:        "INR",
		KeyID:           "pk_test",
	}

	got := FromSubmitResult(res)
	if got.OrderID != "o1" || got.InternalOrderID != "o1" {
		t.Fatalf("expected orderId and internalOrderId to match the order id: %+v", got)
	}
	if got.RazorpayOrderID != "rzp_1" || got.Amount != 400 || got.Currency != "INR" || got.RazorpayKeyID != "pk_test" {
		t.Fatalf("unexpected checkout params: %+v", got)
	}
}
