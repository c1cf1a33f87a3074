package auth

import (
	"net/http"
	"strings"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyVoterID = "voter_id"
	contextKeyRole    = "role"
	contextKeyClaims  = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets voter context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin rejects authenticated voters without the admin role. It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if claims.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetClaims stores validated claims on the request context
func SetClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(contextKeyVoterID, claims.VoterID)
	c.Set(logger.ContextKeyRegNo, claims.RegNo)
	c.Set(contextKeyRole, claims.Role)
	c.Set(contextKeyClaims, claims)
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(contextKeyClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// GetVoterID extracts the authenticated voter id from context
func GetVoterID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(contextKeyVoterID)
	if !exists {
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetRegNo extracts the authenticated registration number from context
func GetRegNo(c *gin.Context) (string, bool) {
	regNo, exists := c.Get(logger.ContextKeyRegNo)
	if !exists {
		return "", false
	}
	s, ok := regNo.(string)
	return s, ok
}

// IsAdmin reports whether the authenticated voter is an administrator
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get(contextKeyRole)
	if !exists {
		return false
	}
	r, ok := role.(models.Role)
	return ok && r == models.RoleAdmin
}
