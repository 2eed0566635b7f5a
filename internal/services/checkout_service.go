package services

import (
	"context"
	"net/http"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/cart"
	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/session"
	"jobdeck_gateway/pkg/apperrors"
)

// Receipt summarises a completed checkout for the confirmation screen.
type Receipt struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Jobs     int    `json:"jobs"`
}

// CheckoutService charges the signed-in user's cart through the
// platform's payment endpoint. The cart is cleared only after the
// charge succeeds, so a declined card leaves it intact.
type CheckoutService interface {
	Pay(ctx context.Context, sess *session.Session, crt *cart.Cart, paymentMethodID string) (Receipt, error)
}

type CheckoutServiceImpl struct {
	client *backend.Client
}

func NewCheckoutService(client *backend.Client) CheckoutService {
	return &CheckoutServiceImpl{client: client}
}

func (s *CheckoutServiceImpl) Pay(ctx context.Context, sess *session.Session, crt *cart.Cart, paymentMethodID string) (Receipt, error) {
	user := sess.User()
	if user == nil {
		return Receipt{}, apperrors.NewUnauthorizedError("sign in to check out")
	}

	items := crt.Items()
	if len(items) == 0 {
		return Receipt{}, apperrors.New(apperrors.CodeEmptyCart, "checkout", "cart is empty", http.StatusBadRequest)
	}

	entries := make([]backend.PaymentCartEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, backend.PaymentCartEntry{
			JobID:     item.Job.ID,
			ApplyType: item.Tier.Wire(),
		})
	}

	req := backend.PaymentRequest{
		Amount:          crt.Total(),
		Currency:        models.CurrencyUSD,
		UserID:          user.ID,
		Cart:            entries,
		PaymentMethodID: paymentMethodID,
	}

	if err := s.client.PayStripe(ctx, req); err != nil {
		return Receipt{}, mapUpstream(err, "checkout")
	}

	crt.Clear()
	logger.CtxInfo(ctx, "checkout completed",
		"user_id", user.ID,
		"jobs", len(entries),
		"amount", req.Amount,
	)

	return Receipt{Amount: req.Amount, Currency: req.Currency, Jobs: len(entries)}, nil
}
