package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"retroart/internal/usecase"
	"retroart/internal/usecase/interfaces"
	"retroart/pkg"

	"github.com/gin-gonic/gin"
)

const razorpaySignatureHeader = "X-Razorpay-Signature"

// WebhookHandler receives Razorpay event deliveries. A verified
// payment.captured (or order.paid) event is the only thing in the system that
// flips an order's paymentStatus to paid.

type WebhookHandler struct {
	usecase usecase.IOrderUseCase
	gateway interfaces.IPaymentGateway
}

func NewWebhookHandler(uc usecase.IOrderUseCase, gateway interfaces.IPaymentGateway) *WebhookHandler {
	return &WebhookHandler{usecase: uc, gateway: gateway}
}

type razorpayEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

func (h *WebhookHandler) HandleRazorpay(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !h.gateway.VerifyWebhookSignature(body, c.GetHeader(razorpaySignatureHeader)) {
		log.Printf("[webhook][handler] signature verification failed")
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var event razorpayEvent
	if err := json.Unmarshal(body, &event); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var providerOrderID string
	switch event.Event {
	case "payment.captured":
		providerOrderID = event.Payload.Payment.Entity.OrderID
	case "order.paid":
		providerOrderID = event.Payload.Order.Entity.ID
		if providerOrderID == "" {
			providerOrderID = event.Payload.Payment.Entity.OrderID
		}
	default:
		// Unsubscribed events are acknowledged so the provider stops retrying.
		log.Printf("[webhook][handler] ignoring event=%s", event.Event)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	log.Printf("[webhook][handler] event=%s provider_order_id=%s", event.Event, providerOrderID)
	order, err := h.usecase.ConfirmPayment(c.Request.Context(), providerOrderID)
	if err != nil {
		log.Printf("[webhook][handler] confirm failed provider_order_id=%s err=%v", providerOrderID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] payment confirmed order_id=%s", order.ID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderOrder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid webhook payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
