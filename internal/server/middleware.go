package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	model "bid-market/internal/models"
	"bid-market/services/market/helpers"
	"bid-market/utils"
)

var errMissingToken = errors.New("no token provided")

// Authenticator maps a bearer token to a caller identity
type Authenticator interface {
	Authenticate(token string) (model.Identity, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware resolves the bearer token into a typed Identity and stores
// it in the request context. Requests without a valid token are rejected.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, errMissingToken, "missing bearer token")
			c.Abort()
			return
		}

		identity, err := auth.Authenticate(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "could not validate user")
			c.Abort()
			return
		}

		helpers.SetIdentity(c, identity)
		c.Next()
	}
}
