package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"retroart/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

// RazorpayGateway creates provider checkout orders and authenticates webhook
// deliveries. In mock mode no outbound call is made; provider order ids are
// derived from the receipt so local runs stay deterministic.

type RazorpayGateway struct {
	client        *razorpay.Client
	keyID         string
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{keyID: keyID, webhookSecret: webhookSecret, mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] Razorpay client initialized key_id=%s", keyID)
	return &RazorpayGateway{
		client:        razorpay.NewClient(keyID, keySecret),
		keyID:         keyID,
		webhookSecret: webhookSecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	if g != nil && g.mockMode {
		id := "order_mock_" + receipt
		log.Printf("[payment][gateway] mock create success provider_order_id=%s amount=%d currency=%s", id, amount, currency)
		return id, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrRazorpayGatewayNotConfigured
	}

	log.Printf("[payment][gateway] create start receipt=%s amount=%d currency=%s", receipt, amount, currency)
	body, err := g.client.Order.Create(map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed receipt=%s err=%v", receipt, err)
		return "", err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		log.Printf("[payment][gateway] response missing order id receipt=%s", receipt)
		return "", fmt.Errorf("razorpay order response missing id")
	}
	log.Printf("[payment][gateway] create success provider_order_id=%s", id)
	return id, nil
}

func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if g != nil && g.mockMode {
		return true
	}
	if g == nil || g.webhookSecret == "" || signature == "" {
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, g.webhookSecret)
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
