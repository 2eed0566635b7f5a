package services

import (
	"context"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/cart"
	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/services/dto"
	"jobdeck_gateway/internal/session"
)

// AuthService drives the sign-in lifecycle of a browser profile:
// credentials go to the platform API, the resulting identity lands in
// the profile's persisted session and the cart switches partitions.
type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) error
	SignIn(ctx context.Context, sess *session.Session, crt *cart.Cart, req dto.SignInRequest) (models.User, error)
	Logout(ctx context.Context, sess *session.Session, crt *cart.Cart)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (string, string, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (string, error)
}

type AuthServiceImpl struct {
	client *backend.Client
}

func NewAuthService(client *backend.Client) AuthService {
	return &AuthServiceImpl{client: client}
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) error {
	if err := s.client.SignUp(ctx, req.Name, req.Email, req.Password); err != nil {
		return mapUpstream(err, "auth")
	}
	return nil
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, sess *session.Session, crt *cart.Cart, req dto.SignInRequest) (models.User, error) {
	user, token, err := s.client.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return models.User{}, mapUpstream(err, "auth")
	}

	sess.LoginSuccess(user, token)
	crt.SetActiveUser(user.ID)

	logger.CtxInfo(ctx, "signed in",
		"user_id", user.ID,
		"role", user.Role.String(),
	)
	return user, nil
}

// Logout clears the persisted identity and detaches the cart. The
// platform API holds no session, so nothing is sent upstream.
func (s *AuthServiceImpl) Logout(ctx context.Context, sess *session.Session, crt *cart.Cart) {
	sess.Logout()
	crt.SetActiveUser(0)
	logger.CtxInfo(ctx, "signed out")
}

func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	msg, err := s.client.ForgotPassword(ctx, req.Email)
	if err != nil {
		return "", mapUpstream(err, "auth")
	}
	return msg, nil
}

func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (string, string, error) {
	resetToken, msg, err := s.client.VerifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		return "", "", mapUpstream(err, "auth")
	}
	return resetToken, msg, nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (string, error) {
	msg, err := s.client.ResetPassword(ctx, req.ResetToken, req.NewPassword)
	if err != nil {
		return "", mapUpstream(err, "auth")
	}
	return msg, nil
}
