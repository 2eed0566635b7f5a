package services

import (
	"context"
	"io"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/models"
)

// ProfileService proxies CV/profile reads and writes. Admin screens use
// the ByID/SaveFor variants to edit other accounts.
type ProfileService interface {
	Profile(ctx context.Context, token string) (models.Profile, error)
	ProfileByID(ctx context.Context, token string, userID int64) (models.Profile, error)
	Update(ctx context.Context, token string, p models.Profile) error
	SaveFor(ctx context.Context, token string, userID int64, p models.Profile) error
	UploadImage(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error)
	UploadCV(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error)
}

type ProfileServiceImpl struct {
	client *backend.Client
}

func NewProfileService(client *backend.Client) ProfileService {
	return &ProfileServiceImpl{client: client}
}

func (s *ProfileServiceImpl) Profile(ctx context.Context, token string) (models.Profile, error) {
	p, err := s.client.Profile(ctx, token)
	if err != nil {
		return models.Profile{}, mapUpstream(err, "profile")
	}
	return p, nil
}

func (s *ProfileServiceImpl) ProfileByID(ctx context.Context, token string, userID int64) (models.Profile, error) {
	p, err := s.client.ProfileByID(ctx, token, userID)
	if err != nil {
		return models.Profile{}, mapUpstream(err, "profile")
	}
	return p, nil
}

func (s *ProfileServiceImpl) Update(ctx context.Context, token string, p models.Profile) error {
	if err := s.client.UpdateProfile(ctx, token, p); err != nil {
		return mapUpstream(err, "profile")
	}
	return nil
}

func (s *ProfileServiceImpl) SaveFor(ctx context.Context, token string, userID int64, p models.Profile) error {
	if err := s.client.SaveProfileFor(ctx, token, userID, p); err != nil {
		return mapUpstream(err, "profile")
	}
	return nil
}

func (s *ProfileServiceImpl) UploadImage(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error) {
	url, err := s.client.UploadProfileImage(ctx, token, userID, filename, r)
	if err != nil {
		return "", mapUpstream(err, "profile")
	}
	return url, nil
}

func (s *ProfileServiceImpl) UploadCV(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error) {
	url, err := s.client.UploadCV(ctx, token, userID, filename, r)
	if err != nil {
		return "", mapUpstream(err, "profile")
	}
	return url, nil
}
