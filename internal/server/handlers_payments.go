package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/docforge/docforge/internal/payments"
)

// OrderRequest represents the request body for /api/payments/order.
type OrderRequest struct {
	Email  string `json:"email,omitempty"`
	UserID string `json:"userId,omitempty"`
}

// handleCreateOrder creates a Razorpay order for the Pro upgrade.
func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	order, err := s.orders.CreateOrder(r.Context(), payments.OrderRequest{
		Email:  req.Email,
		UserID: req.UserID,
	})
	if err != nil {
		log.Printf("Order creation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	s.jsonResponse(w, http.StatusOK, order)
}

// handleWebhook processes Razorpay webhook deliveries. The signature is
// verified over the raw body before anything is decoded; unsigned or
// mis-signed deliveries are rejected without side effects.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	// An empty secret would make every signature trivially forgeable, so
	// refuse deliveries outright until one is configured.
	if s.webhookSecret == "" {
		log.Printf("Webhook rejected: RAZORPAY_WEBHOOK_SECRET is not configured")
		s.errorResponse(w, http.StatusServiceUnavailable, "Webhook not configured")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !payments.VerifySignature(s.webhookSecret, body, signature) {
		log.Printf("Webhook rejected: invalid signature")
		s.errorResponse(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	ev, err := payments.ParseEvent(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid event body")
		return
	}

	if err := s.webhooks.Handle(r.Context(), ev); err != nil {
		log.Printf("Webhook handler error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
