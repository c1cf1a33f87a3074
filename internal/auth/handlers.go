package auth

import (
	"errors"
	"net/http"

	apperrors "voteverse-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate with registration number and directory password and receive a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Voter credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Login unavailable"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case apperrors.IsConfiguration(err):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login is not available", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/auth/me
// @Summary Current voter
// @Description Return the profile of the authenticated voter
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Voter
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Voter not found"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	voter, err := h.service.Me(claims)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Voter not found"})
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load voter", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, voter)
}
