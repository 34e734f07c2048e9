package utils

import "github.com/gin-gonic/gin"

// Keys set on the gin context by the HTTP and websocket auth
// middlewares.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// CurrentUserID reads the authenticated user's id from the context.
// Returns 0 when the request never passed an auth middleware. The
// numeric cases cover both paths: typed Claims store a uint, parsed
// MapClaims surface JSON numbers as float64.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole reads the authenticated user's role, or "" when absent.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
