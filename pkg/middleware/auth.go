package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"darkshield/internal/services"
	"darkshield/pkg/utils"
)

const (
	ContextKeySubject = "subject"
	ContextKeyRole    = "role"
)

// AuthMiddleware establishes the request principal from a bearer credential.
// A locally issued token wins; otherwise the credential is tried as a Google
// ID token. A token without a role claim belongs to an internal admin token
// from before roles were added, so it defaults to admin. The middleware
// never aborts: a request with no usable credential simply proceeds
// unauthenticated and each route decides what that means.
func AuthMiddleware(tokens services.TokenServiceInterface, verifier services.IdentityVerifierInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		credential := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		if tokens.Validate(credential) {
			role := tokens.ExtractRole(credential)
			if role == "" {
				role = services.RoleAdmin
			}
			c.Set(ContextKeySubject, tokens.ExtractSubject(credential))
			c.Set(ContextKeyRole, role)
			c.Next()
			return
		}

		email, err := verifier.VerifyEmail(c.Request.Context(), credential)
		if err != nil {
			log.Printf("Invalid bearer token: %v", err)
		} else if email != "" {
			c.Set(ContextKeySubject, email)
			c.Set(ContextKeyRole, services.RoleUser)
		}
		c.Next()
	}
}

// RequireRole guards a route group: 401 without a principal, 403 with the
// wrong one.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)
		if role == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}
		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
