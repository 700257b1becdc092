package response

import "retroart/internal/usecase"

// SubmitOrderResponse carries the checkout parameters back to the storefront.
// orderId and internalOrderId are the same value; both names are kept because
// the storefront uses internalOrderId to build the success redirect and older
// clients read orderId.
type SubmitOrderResponse struct {
	OrderID         string `json:"orderId"`
	RazorpayOrderID string `json:"razorpayOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	RazorpayKeyID   string `json:"razorpayKeyId"`
	InternalOrderID string `json:"internalOrderId"`
}

func FromSubmitResult(res usecase.SubmitResult) SubmitOrderResponse {
	return SubmitOrderResponse{
		OrderID:         res.Order.ID,
		RazorpayOrderID: res.ProviderOrderID,
		Amount:          res.Amount,
		Currency:        res.Currency,
		RazorpayKeyID:   res.KeyID,
		InternalOrderID: res.Order.ID,
	}
}
