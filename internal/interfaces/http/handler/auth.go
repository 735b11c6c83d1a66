package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	identityapp "github.com/inventaris/backend/internal/application/identity"
	"github.com/inventaris/backend/internal/infrastructure/config"
	"github.com/inventaris/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	cookies     config.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, cookies config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// SignUp registers a new account. Self-registered accounts always get the
// regular user role.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req identityapp.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// SignIn authenticates a user and sets the access token as an HttpOnly
// cookie. The token never appears in the response body.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req identityapp.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setAccessTokenCookie(c, result.Token, time.Until(result.ExpiresAt))
	h.Success(c, result)
}

// SignOut revokes the current token and clears the access token cookie
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := middleware.GetRawToken(c)
	if err := h.authService.SignOut(c.Request.Context(), token); err != nil {
		h.HandleError(c, err)
		return
	}

	h.setAccessTokenCookie(c, "", -time.Hour)
	h.Success(c, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) setAccessTokenCookie(c *gin.Context, token string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if token == "" {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenName,
		Value:    token,
		Path:     h.cookies.Path,
		Domain:   h.cookies.Domain,
		MaxAge:   maxAge,
		Secure:   h.cookies.Secure,
		HttpOnly: true,
		SameSite: sameSiteMode(h.cookies.SameSite),
	})
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
