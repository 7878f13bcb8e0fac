package helpers

import (
	"github.com/gin-gonic/gin"

	model "bid-market/internal/models"
)

// identityKey is the gin context key holding the authenticated Identity
const identityKey = "identity"

// SetIdentity stores the authenticated caller in the request context
func SetIdentity(c *gin.Context, identity model.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the authenticated caller stored by the auth middleware
func CurrentIdentity(c *gin.Context) (model.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := value.(model.Identity)
	return identity, ok
}
