package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bid-market/internal/auction"
	"bid-market/internal/favorites"
	"bid-market/internal/identity"
	"bid-market/internal/query"
	"bid-market/internal/repository"
	"bid-market/internal/server"
	handler "bid-market/services/market/handler"
	"bid-market/services/market/helpers"
)

const testSecret = "integration-test-secret"

// testClock is an adjustable clock shared by the engine and the token provider.
type testClock struct {
	mu      sync.Mutex
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Now().UTC()}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// SetupTestRouter initializes the full HTTP stack over an in-memory store.
func SetupTestRouter() (*gin.Engine, *testClock) {
	gin.SetMode(gin.TestMode)

	clock := newTestClock()
	repo := repository.NewMemoryRepo()
	provider := identity.NewProvider(repo, testSecret, 30*time.Minute)
	engine := auction.NewEngineWithClock(repo, clock.Now)
	ledger := favorites.NewLedger(repo, engine)
	queries := query.NewService(repo, engine)

	authHandler := handler.NewAuthHandler(provider)
	marketHandler := handler.NewMarketHandler(engine, ledger, queries)

	return server.SetupRouter(authHandler, marketHandler, provider), clock
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, token, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// RegisterAndLogin creates a user through the API and returns its id and bearer token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, username, password string) (userID, token string) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/register", "",
		helpers.RegisterRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, w.Code)
	userID = resp["data"].(map[string]any)["user_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/token", "",
		helpers.TokenRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code)
	token = resp["data"].(map[string]any)["access_token"].(string)

	return userID, token
}

// CreateListing creates a listing through the API and returns its product id.
func CreateListing(t *testing.T, router *gin.Engine, token string, clock *testClock, startingBid float64, lifetime time.Duration) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/products", token,
		helpers.CreateListingRequest{
			Title:       fmt.Sprintf("listing-%d", time.Now().UnixNano()),
			Category:    "misc",
			Description: "integration fixture",
			ClosingAt:   clock.Now().Add(lifetime),
			StartingBid: startingBid,
		})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["id"].(string)
}
