package handlers_test

import (
	"voteverse-backend/internal/auth"
	"voteverse-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asVoter stands in for RequireAuth by attaching claims for id
func asVoter(id uuid.UUID, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetClaims(c, &auth.AuthClaims{
			VoterID: id.String(),
			RegNo:   "T21-03-00001",
			Role:    role,
		})
		c.Next()
	}
}
