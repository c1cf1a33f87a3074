package auth

import (
	"errors"
	"fmt"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tokenIssuer = "voteverse-backend"

// VoterLookup is the slice of the voter repository the auth service needs
type VoterLookup interface {
	GetByRegNo(regNo string) (*models.Voter, error)
	GetByID(id uuid.UUID) (*models.Voter, error)
}

// AuthService issues and validates voter session tokens
type AuthService struct {
	secret        []byte
	ttl           time.Duration
	authenticator Authenticator
	voters        VoterLookup
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	VoterID              string      `json:"voter_id" example:"3f0b5c1e-8d7a-4c1f-9f2a-0b1c2d3e4f50"`
	RegNo                string      `json:"reg_no" example:"T21-03-04512"`
	Role                 models.Role `json:"role" example:"voter"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	RegNo    string `json:"reg_no" binding:"required" example:"T21-03-04512"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the voter profile
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64         `json:"expiresIn" example:"3600"`
	Voter       *models.Voter `json:"voter"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration, authenticator Authenticator, voters VoterLookup) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{
		secret:        []byte(secret),
		ttl:           ttl,
		authenticator: authenticator,
		voters:        voters,
	}, nil
}

// Login checks the voter's directory credentials and issues a token. The voter
// must already exist locally, which means the registry sync has seen them.
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	if s.authenticator == nil {
		return nil, apperrors.ErrLDAPNotConfigured
	}
	if err := s.authenticator.Authenticate(req.RegNo, req.Password); err != nil {
		return nil, err
	}

	voter, err := s.voters.GetByRegNo(req.RegNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load voter: %w", err)
	}

	token, err := s.GenerateJWT(voter)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	logger.New().WithVoter(voter.RegNo).Info("voter logged in")

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		Voter:       voter,
	}, nil
}

// Me returns the voter behind validated claims
func (s *AuthService) Me(claims *AuthClaims) (*models.Voter, error) {
	id, err := uuid.Parse(claims.VoterID)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("token carries an invalid voter id")
	}
	voter, err := s.voters.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, err
	}
	return voter, nil
}

// GenerateJWT creates a JWT token for the voter
func (s *AuthService) GenerateJWT(voter *models.Voter) (string, error) {
	now := time.Now()
	role := voter.Role
	if role == "" {
		role = models.RoleVoter
	}
	claims := &AuthClaims{
		VoterID: voter.ID.String(),
		RegNo:   voter.RegNo,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   voter.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
