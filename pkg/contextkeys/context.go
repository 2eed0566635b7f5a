package contextkeys

// Custom type to avoid collisions with other context users.
type contextKey string

// SessionContextKey is the gin context key holding the *session.Session of
// the current browser profile.
const SessionContextKey = contextKey("session")

// CartContextKey is the gin context key holding the *cart.Cart bound to the
// same browser profile.
const CartContextKey = contextKey("cart")
