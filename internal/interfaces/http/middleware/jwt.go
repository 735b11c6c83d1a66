package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/infrastructure/auth"
	"github.com/inventaris/backend/internal/interfaces/http/dto"
)

// Context keys and token carriers
const (
	ActorKey        = "actor"
	RawTokenKey     = "raw_token"
	AccessTokenName = "access_token"
	AuthHeaderKey   = "Authorization"
	BearerPrefix    = "Bearer "
)

// JWTAuth authenticates requests carrying an access token either in the
// access_token cookie or an Authorization Bearer header. On success the
// requester's identity is stored in the gin context as an Actor.
func JWTAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := jwtService.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), claims.ID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse(dto.ErrCodeInternal, "Failed to verify token"))
				return
			}
			if revoked {
				abortUnauthorized(c, "Token has been revoked")
				return
			}
		}

		c.Set(ActorKey, identity.Actor{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     identity.Role(claims.Role),
			IsAdmin:  claims.IsAdmin,
		})
		c.Set(RawTokenKey, tokenString)
		c.Next()
	}
}

// extractToken reads the access token from the cookie, falling back to the
// Authorization header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader(AuthHeaderKey)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimPrefix(header, BearerPrefix)
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetActor retrieves the authenticated actor from the gin context
func GetActor(c *gin.Context) (identity.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return identity.Actor{}, false
	}
	actor, ok := value.(identity.Actor)
	return actor, ok
}

// GetRawToken retrieves the token string the request authenticated with
func GetRawToken(c *gin.Context) string {
	return c.GetString(RawTokenKey)
}
