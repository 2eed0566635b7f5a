package backend

import (
	"context"
	"net/http"

	"jobdeck_gateway/internal/models"
)

type signInResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifyOTPResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
}

// SignUp registers a new account. The backend sends its own confirmation
// flow; the gateway just relays success or the backend's message.
func (c *Client) SignUp(ctx context.Context, name, email, password string) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	return c.doJSON(ctx, http.MethodPost, "/signup", "", body, nil)
}

// SignIn exchanges credentials for the user record and a bearer token.
func (c *Client) SignIn(ctx context.Context, email, password string) (models.User, string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp signInResponse
	if err := c.doJSON(ctx, http.MethodPost, "/sign-in", "", body, &resp); err != nil {
		return models.User{}, "", err
	}
	if !resp.Success {
		return models.User{}, "", &APIError{Status: http.StatusUnauthorized, Message: resp.Message}
	}
	return resp.User, resp.Token, nil
}

// Verify asks the backend whether the bearer token is still good. Any
// transport error or non-2xx status means the session is over. The request
// context bounds the call; a canceled context simply abandons it.
func (c *Client) Verify(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodGet, "/auth/verify", token, nil, nil)
}

// ForgotPassword starts the email -> OTP -> reset-token recovery flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	err := c.doJSON(ctx, http.MethodPost, "/forgot-password", "", map[string]string{"email": email}, &resp)
	return resp.Message, err
}

// VerifyOTP trades the emailed one-time code for a reset token.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (string, string, error) {
	body := map[string]string{
		"email": email,
		"otp":   otp,
	}
	var resp verifyOTPResponse
	if err := c.doJSON(ctx, http.MethodPost, "/verify-otp", "", body, &resp); err != nil {
		return "", "", err
	}
	return resp.ResetToken, resp.Message, nil
}

// ResetPassword finishes the recovery flow with the reset token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, error) {
	body := map[string]string{
		"reset_token":  resetToken,
		"new_password": newPassword,
	}
	var resp messageResponse
	err := c.doJSON(ctx, http.MethodPost, "/reset-password", "", body, &resp)
	return resp.Message, err
}
