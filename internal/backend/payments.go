package backend

import (
	"context"
	"net/http"
)

// PaymentCartEntry is one charged cart line, tier in the backend's wire
// labels (AI/Smart/Manual).
type PaymentCartEntry struct {
	JobID     int64  `json:"job_id"`
	ApplyType string `json:"applyType"`
}

// PaymentRequest is the body of POST /payments/stripe. The payment method id
// comes from the card tokenization the client performed against the payment
// processor; the backend executes the actual charge.
type PaymentRequest struct {
	Amount          int                `json:"amount"`
	Currency        string             `json:"currency"`
	UserID          int64              `json:"user_id"`
	Cart            []PaymentCartEntry `json:"cart"`
	PaymentMethodID string             `json:"payment_method_id"`
}

type paymentResponse struct {
	Success bool   `json:"success"`
	Err     string `json:"error"`
}

// PayStripe submits the tokenized payment and the cart being purchased.
// A response without success is a failed charge; the cart must stay intact.
func (c *Client) PayStripe(ctx context.Context, req PaymentRequest) error {
	var resp paymentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/payments/stripe", "", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		msg := resp.Err
		if msg == "" {
			msg = "Payment failed"
		}
		return &APIError{Status: http.StatusPaymentRequired, Message: msg}
	}
	return nil
}
