package apperrors

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStateError    ErrorCode = "STATE_ERROR"
	CodeUpstreamError ErrorCode = "UPSTREAM_ERROR"

	// Generic request-level failures
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired ErrorCode = "TOKEN_EXPIRED"

	// Checkout
	CodePaymentFailed ErrorCode = "PAYMENT_FAILED"
	CodeEmptyCart     ErrorCode = "EMPTY_CART"
)
