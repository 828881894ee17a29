package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/SscSPs/shop_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingClient records enqueued captures; other posthog.Client methods are unused.
type capturingClient struct {
	posthog.Client
	captured []posthog.Capture
}

func (c *capturingClient) Enqueue(msg posthog.Message) error {
	if capture, ok := msg.(posthog.Capture); ok {
		c.captured = append(c.captured, capture)
	}
	return nil
}

func (c *capturingClient) Close() error { return nil }

func analyticsRouter(client *capturingClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(utils.NewPosthogClientWrapper(client, nil)))
	signedIn := func(c *gin.Context) { c.Set("userID", "user-42") }
	r.GET("/api/v1/customers/:customerID/ledger", func(c *gin.Context) {
		signedIn(c)
		c.Status(http.StatusOK)
	})
	r.POST("/api/v1/customers/:customerID/returned-orders", func(c *gin.Context) {
		signedIn(c)
		c.Status(http.StatusBadRequest)
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestPosthogMiddleware_TracksSuccessfulCalls(t *testing.T) {
	client := &capturingClient{}
	r := analyticsRouter(client)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/customers/7/ledger", nil))

	require.Len(t, client.captured, 1)
	got := client.captured[0]
	assert.Equal(t, "user-42", got.DistinctId)
	assert.Equal(t, "get_customers_ledger", got.Event)
	assert.Equal(t, "7", got.Properties["customer_id"])
	assert.Equal(t, "/api/v1/customers/:customerID/ledger", got.Properties["route"])
}

func TestPosthogMiddleware_SkipsFailuresAndUnauthenticated(t *testing.T) {
	client := &capturingClient{}
	r := analyticsRouter(client)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/customers/7/returned-orders", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	assert.Empty(t, client.captured)
}

func TestPosthogMiddleware_UninitializedClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(utils.NewPosthogClientWrapper(nil, nil)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
