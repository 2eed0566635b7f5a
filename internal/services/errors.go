package services

import (
	"errors"
	"net/http"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/pkg/apperrors"
)

// mapUpstream converts platform API failures into AppErrors so that
// handlers can translate them uniformly. Status codes with a local
// meaning keep it; anything else surfaces as an upstream error.
func mapUpstream(err error, domain string) error {
	if err == nil {
		return nil
	}
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		return apperrors.UpstreamError(err, "platform API unreachable")
	}
	switch apiErr.Status {
	case http.StatusUnauthorized:
		return apperrors.NewUnauthorizedError(apiErr.Message)
	case http.StatusForbidden:
		return apperrors.NewForbiddenError(apiErr.Message)
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(domain, apiErr.Message)
	case http.StatusBadRequest:
		return apperrors.NewBadRequestError(apiErr.Message)
	case http.StatusPaymentRequired:
		return apperrors.New(apperrors.CodePaymentFailed, domain, apiErr.Message, http.StatusPaymentRequired)
	default:
		return apperrors.New(apperrors.CodeUpstreamError, domain, apiErr.Message, http.StatusBadGateway)
	}
}
