package integration_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
	userSeq          atomic.Int64
)

// GetTestServer returns the shared gateway instance, creating it on
// first use. Tests isolate themselves through distinct browser profiles
// and distinct accounts, so they can share one server.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.Backend.SetJobs(catalogueFixture())
	})
	return globalTestServer
}

func catalogueFixture() []models.Job {
	return []models.Job{
		{ID: 1, Title: "Backend Engineer", CompanyName: "Acme", Location: "Almaty", Salary: "$4000"},
		{ID: 2, Title: "Data Analyst", CompanyName: "Globex", Location: "Astana", Salary: "$3000"},
		{ID: 3, Title: "SRE", CompanyName: "Initech", Location: "Remote", Salary: "$5000"},
	}
}

// newUser registers a unique account directly with the fake backend and
// returns it with its credentials.
func newUser(t *testing.T, ts *helpers.TestServer, role models.UserRole) (models.User, string, string) {
	t.Helper()
	id := userSeq.Add(1) + 1000
	user := models.User{
		ID:    id,
		Name:  fmt.Sprintf("User %d", id),
		Email: fmt.Sprintf("user%d@test.com", id),
		Role:  role,
	}
	password := fmt.Sprintf("password-%d", id)
	token := fmt.Sprintf("token-%d", id)
	ts.Backend.AddUser(user, password, token)
	return user, password, token
}
