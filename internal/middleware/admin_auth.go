package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"pannel_pintura/pkg"

	"github.com/gin-gonic/gin"
)

// AdminAuth requires "Authorization: Bearer <token>". An empty token
// disables the admin surface entirely (every request gets 401).
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), []byte(token)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
