// Package storefront is the Go client for the retro-art service: order
// submission with the hosted checkout handoff, the admin session gate and
// the dashboard's local order cache.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Order is the client's transient copy of a backend order. It may be stale
// between fetches; the backend owns the truth.
type Order struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	PaymentStatus string    `json:"paymentStatus"`
	WorkStatus    string    `json:"workStatus"`
}

// CheckoutParams is the order-creation response: everything needed to open
// the hosted payment widget. OrderID and InternalOrderID carry the same value.
type CheckoutParams struct {
	OrderID         string `json:"orderId"`
	RazorpayOrderID string `json:"razorpayOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	RazorpayKeyID   string `json:"razorpayKeyId"`
	InternalOrderID string `json:"internalOrderId"`
}

// Client talks to the service API. All endpoints live under one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// SubmitOrder posts the multipart submission and returns the checkout
// parameters. Non-success responses become a SubmissionError carrying the
// server message, or a generic fallback when the body is unreadable.
func (c *Client) SubmitOrder(ctx context.Context, email, filename string, image io.Reader) (CheckoutParams, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("email", email); err != nil {
		return CheckoutParams{}, err
	}
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return CheckoutParams{}, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return CheckoutParams{}, err
	}
	if err := mw.Close(); err != nil {
		return CheckoutParams{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submit-order", body)
	if err != nil {
		return CheckoutParams{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CheckoutParams{}, &SubmissionError{Message: "Failed to create order"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CheckoutParams{}, &SubmissionError{Message: responseMessage(resp.Body, "Failed to create order")}
	}

	var params CheckoutParams
	if err := json.NewDecoder(resp.Body).Decode(&params); err != nil {
		return CheckoutParams{}, &SubmissionError{Message: "Failed to create order"}
	}
	return params, nil
}

// ListOrders fetches the full order collection with the admin bearer
// credential.
func (c *Client) ListOrders(ctx context.Context, apiKey string) ([]Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/orders", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: "Failed to fetch orders"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Message: responseMessage(resp.Body, "Failed to fetch orders")}
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, &FetchError{Message: "Failed to fetch orders"}
	}
	return orders, nil
}

// UpdateWorkStatus asks the backend to move one order's workStatus. The
// backend decides legality; no client-side transition check happens here.
func (c *Client) UpdateWorkStatus(ctx context.Context, apiKey, id, workStatus string) error {
	payload, err := json.Marshal(map[string]string{"workStatus": workStatus})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/api/admin/orders/%s", c.baseURL, id), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpdateError{Message: "Failed to update order"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpdateError{Message: responseMessage(resp.Body, "Failed to update order")}
	}
	return nil
}

// NotifyCompleted asks the backend to email the customer that their order is
// done. The backend rejects orders that are not completed yet.
func (c *Client) NotifyCompleted(ctx context.Context, apiKey, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/admin/orders/%s/notify", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpdateError{Message: "Failed to send notification"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return &UpdateError{Message: responseMessage(resp.Body, "Failed to send notification")}
	}
	return nil
}

// Login exchanges the shared admin password for the bearer credential every
// other admin call carries.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Message: "Invalid password"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{Message: responseMessage(resp.Body, "Invalid password")}
	}

	var body struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.APIKey == "" {
		return "", &AuthError{Message: "Invalid password"}
	}
	return body.APIKey, nil
}

// responseMessage extracts the server's {message} body, falling back when the
// body is missing or malformed.
func responseMessage(r io.Reader, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Message == "" {
		return fallback
	}
	return body.Message
}
