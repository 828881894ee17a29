package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/shop_management_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

var analyticsSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware reports every successful authenticated API call to PostHog.
// The event is named after the matched route, so
// GET /api/v1/customers/:customerID/ledger is sent as "get_customers_ledger".
func PosthogMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	if client == nil || !client.IsInitialized() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" || analyticsSkip[route] || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       route,
			"status_code": c.Writer.Status(),
		}
		if customerID := c.Param("customerID"); customerID != "" {
			props["customer_id"] = customerID
		}
		client.Enqueue(userID, analyticsEvent(c.Request.Method, route), props)
	}
}

func analyticsEvent(method, route string) string {
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.TrimPrefix(route, apiPrefix), "/") {
		if seg == "" || seg[0] == ':' || seg[0] == '*' {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	return strings.Join(parts, "_")
}
