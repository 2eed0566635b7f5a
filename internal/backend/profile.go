package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"jobdeck_gateway/internal/models"
)

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Err     string `json:"error"`
}

// Profile fetches the caller's own profile aggregate.
func (c *Client) Profile(ctx context.Context, token string) (models.Profile, error) {
	var p models.Profile
	err := c.doJSON(ctx, http.MethodGet, "/profile", token, nil, &p)
	return p, err
}

// ProfileByID fetches another user's profile (admin screens link to these).
func (c *Client) ProfileByID(ctx context.Context, token string, userID int64) (models.Profile, error) {
	var p models.Profile
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/profile/%d", userID), token, nil, &p)
	return p, err
}

// UpdateProfile replaces the caller's profile as a whole document.
func (c *Client) UpdateProfile(ctx context.Context, token string, p models.Profile) error {
	return c.doJSON(ctx, http.MethodPut, "/profile", token, p, nil)
}

// SaveProfileFor replaces the given user's profile as a whole document.
func (c *Client) SaveProfileFor(ctx context.Context, token string, userID int64, p models.Profile) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/profile/%d", userID), token, p, nil)
}

// UploadProfileImage streams an avatar to the backend and returns the public
// URL it was stored under.
func (c *Client) UploadProfileImage(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, token, fmt.Sprintf("/users/%d/profile-image", userID), "image", filename, r)
}

// UploadCV streams a CV document to the backend.
func (c *Client) UploadCV(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, token, fmt.Sprintf("/users/%d/cv", userID), "cv", filename, r)
}

// upload performs one multipart POST. The whole file is buffered; profile
// images and CVs are small.
func (c *Client) upload(ctx context.Context, token, path, field, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read upload %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.asAPIError(resp)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode POST %s: %w", path, err)
	}
	if !out.Success {
		return "", &APIError{Status: http.StatusBadGateway, Message: out.Err}
	}
	return out.URL, nil
}
