package dto

// ApplyRequest picks the application tier for a catalogue job being
// added to the cart.
type ApplyRequest struct {
	Tier string `json:"applyType" validate:"required,oneof=quick smart manual"`
}

// CheckoutRequest carries the tokenised payment method produced by the
// payment widget. The amount is never taken from the client.
type CheckoutRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending applied"`
}
