package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"jobdeck_gateway/internal/app"
	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/config"
	"jobdeck_gateway/internal/state"
)

// TestServer runs the full gateway over a temporary state store and a
// fake upstream backend.
type TestServer struct {
	Server  *httptest.Server
	Backend *FakeBackend
	Store   *state.Store
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	fb := NewFakeBackend()

	os.Setenv("UPSTREAM_BASE_URL", fb.URL())
	os.Setenv("SERVER_ENV", "test")
	config.LoadConfig()
	cfg := config.GetConfig()

	dir, err := os.MkdirTemp("", "jobdeck-test-*")
	if err != nil {
		t.Fatalf("failed to create state dir: %v", err)
	}
	store, err := state.Open(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("failed to open state store: %v", err)
	}

	client := backend.NewClient(fb.URL(), cfg.UpstreamTimeout())
	router := app.SetupRouter(cfg, store, client, nil)

	return &TestServer{
		Server:  httptest.NewServer(router),
		Backend: fb,
		Store:   store,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.Backend.Close()
}

// Browser is one simulated browser profile: an HTTP client with its own
// cookie jar, so the gateway sees a stable profile cookie. Redirects
// are not followed; guard redirects are assertion targets.
type Browser struct {
	base   string
	client *http.Client
}

func (ts *TestServer) NewBrowser(t *testing.T) *Browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &Browser{
		base: ts.Server.URL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Send issues one JSON request and returns the response plus its body.
func (b *Browser) Send(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, b.base+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, string(raw)
}

// Do sends a prepared request through the browser's client, for bodies
// Send cannot build, multipart uploads mostly.
func (b *Browser) Do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := b.client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, string(raw)
}

// SignIn authenticates the browser against the fake backend's account.
func (b *Browser) SignIn(t *testing.T, email, password string) {
	t.Helper()
	resp, body := b.Send(t, http.MethodPost, "/sign-in", map[string]string{
		"email":    email,
		"password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign-in failed with status %d: %s", resp.StatusCode, body)
	}
}
