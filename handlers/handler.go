package handlers

import (
	"net/http"
	"strings"

	"github.com/anirudh21-ch/elearn/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const claimsKey = "claims"

// Handler carries the store handle and token service into every route.
// Both are constructed once in main and passed in here; nothing in this
// package holds package-level state.
type Handler struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

// New builds a Handler around an open store and a token service.
func New(db *gorm.DB, tokens *auth.TokenService) *Handler {
	return &Handler{db: db, tokens: tokens}
}

// bearerToken extracts the token from an "Authorization: Bearer <t>"
// header, or returns "" when the header is absent or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// bindInput decodes the request body into dst, accepting either JSON or
// form encoding by Content-Type. Decode failures are deliberately
// swallowed: field presence is validated afterwards so an empty or
// malformed body surfaces as a specific missing-field 400.
func bindInput(c *gin.Context, dst interface{}) {
	if c.ContentType() == "application/json" {
		_ = c.ShouldBindJSON(dst)
		return
	}
	_ = c.ShouldBind(dst)
}

// RequireAuth protects routes that demand a valid identity. Missing or
// invalid tokens are a hard 401 here, never anonymous.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// contextClaims returns the claims stored by RequireAuth.
func contextClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
