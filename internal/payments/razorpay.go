// Package payments integrates with Razorpay: order creation for the Pro
// upgrade, webhook signature verification, and subscription event handling.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com"

// Pro plan price in paise (INR 699.00).
const proPlanAmount = 69900

// OrderRequest carries the purchaser identity attached to the order notes so
// the webhook can find the profile later.
type OrderRequest struct {
	Email  string
	UserID string
}

// Order is the subset of Razorpay's order entity returned to clients.
type Order struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Notes    Notes  `json:"notes"`
}

// Provider creates payment orders. *RazorpayClient satisfies this.
type Provider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

// RazorpayClient talks to the Razorpay REST API with key-pair basic auth.
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder creates a one-off order for the Pro plan. Missing identity
// fields are recorded as "unknown" rather than omitted so the notes shape is
// stable for the webhook.
func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	email := req.Email
	if email == "" {
		email = "unknown"
	}
	userID := req.UserID
	if userID == "" {
		userID = "unknown"
	}

	payload := map[string]any{
		"amount":   proPlanAmount,
		"currency": "INR",
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
		"notes": map[string]string{
			"plan":   "Pro Plan",
			"email":  email,
			"userId": userID,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order creation failed: status %d: %s", resp.StatusCode, respBody)
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &order, nil
}
