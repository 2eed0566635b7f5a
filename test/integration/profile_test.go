package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"testing"

	"jobdeck_gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_WholeDocumentUpdateAndRefetch(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)
	ts.Backend.SetProfile(user.ID, models.Profile{
		UserID:   user.ID,
		FullName: user.Name,
		Skills:   []string{"Go"},
	})

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, body := browser.Send(t, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, user.Name)

	updated := models.Profile{
		UserID:   user.ID,
		FullName: "Renamed User",
		Headline: "Backend Engineer",
		Skills:   []string{"Go", "SQL"},
		Experience: []models.Experience{{
			Company:          "Acme",
			Title:            "Engineer",
			Responsibilities: []string{"Built services"},
		}},
	}
	res, body = browser.Send(t, http.MethodPut, "/profile", updated)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// The response is the re-fetched stored document, not an echo.
	var stored models.Profile
	require.NoError(t, json.Unmarshal([]byte(body), &stored))
	assert.Equal(t, "Renamed User", stored.FullName)
	assert.Equal(t, []string{"Go", "SQL"}, stored.Skills)
	require.Len(t, stored.Experience, 1)
	assert.Equal(t, []string{"Built services"}, stored.Experience[0].Responsibilities)
}

func TestProfile_AdminEditsAnotherAccount(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	admin, adminPassword, _ := newUser(t, ts, models.RoleAdmin)
	target, _, _ := newUser(t, ts, models.RoleUser)
	ts.Backend.SetProfile(target.ID, models.Profile{UserID: target.ID, FullName: target.Name})

	browser := ts.NewBrowser(t)
	browser.SignIn(t, admin.Email, adminPassword)

	path := "/profile/" + itoa(target.ID)
	res, body := browser.Send(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, target.Name)

	res, _ = browser.Send(t, http.MethodPost, path, models.Profile{
		UserID:   target.ID,
		FullName: "Edited By Admin",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = browser.Send(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Edited By Admin")
}

func TestProfile_CVUploadReturnsURL(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("cv", "resume.pdf")
	require.NoError(t, err)
	io.WriteString(fw, "%PDF-1.4 test")
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/users/"+itoa(user.ID)+"/cv", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, body := browser.Do(t, req)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "https://cdn.test/resume.pdf")
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
