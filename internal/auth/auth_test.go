package auth

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voteverse-backend/internal/config"
	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-ldap/ldap/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVoters struct {
	byRegNo map[string]*models.Voter
}

func (s *stubVoters) GetByRegNo(regNo string) (*models.Voter, error) {
	if v, ok := s.byRegNo[regNo]; ok {
		return v, nil
	}
	return nil, apperrors.ErrVoterNotFound
}

func (s *stubVoters) GetByID(id uuid.UUID) (*models.Voter, error) {
	for _, v := range s.byRegNo {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, apperrors.ErrVoterNotFound
}

type stubAuthenticator struct{ err error }

func (s stubAuthenticator) Authenticate(string, string) error { return s.err }

func newVoter(regNo string, role models.Role) *models.Voter {
	v := &models.Voter{RegNo: regNo, FirstName: "Grace", LastName: "John", Role: role}
	v.ID = uuid.New()
	return v
}

func newTestService(t *testing.T, authn Authenticator, voters ...*models.Voter) *AuthService {
	t.Helper()
	lookup := &stubVoters{byRegNo: map[string]*models.Voter{}}
	for _, v := range voters {
		lookup.byRegNo[v.RegNo] = v
	}
	svc, err := NewAuthService("test-signing-key", time.Hour, authn, lookup)
	require.NoError(t, err)
	return svc
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService("", time.Hour, DevAuthenticator{}, &stubVoters{})
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	voter := newVoter("T21-03-04512", models.RoleAdmin)
	svc := newTestService(t, DevAuthenticator{}, voter)

	token, err := svc.GenerateJWT(voter)
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, voter.ID.String(), claims.VoterID)
	assert.Equal(t, "T21-03-04512", claims.RegNo)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestValidateJWTRejects(t *testing.T) {
	voter := newVoter("T21-03-04512", models.RoleVoter)
	svc := newTestService(t, DevAuthenticator{}, voter)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService("another-key", time.Hour, nil, &stubVoters{})
		require.NoError(t, err)
		token, err := other.GenerateJWT(voter)
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{
			VoterID: voter.ID.String(),
			RegNo:   voter.RegNo,
			Role:    models.RoleVoter,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				Issuer:    tokenIssuer,
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	voter := newVoter("T21-03-04512", models.RoleVoter)

	t.Run("success", func(t *testing.T) {
		svc := newTestService(t, stubAuthenticator{}, voter)
		resp, err := svc.Login(LoginRequest{RegNo: voter.RegNo, Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Equal(t, voter, resp.Voter)
	})

	t.Run("bad password", func(t *testing.T) {
		svc := newTestService(t, stubAuthenticator{err: apperrors.ErrInvalidCredentials}, voter)
		_, err := svc.Login(LoginRequest{RegNo: voter.RegNo, Password: "pw"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown voter", func(t *testing.T) {
		svc := newTestService(t, stubAuthenticator{})
		_, err := svc.Login(LoginRequest{RegNo: "missing", Password: "pw"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("no authenticator", func(t *testing.T) {
		svc := newTestService(t, nil, voter)
		_, err := svc.Login(LoginRequest{RegNo: voter.RegNo, Password: "pw"})
		assert.True(t, apperrors.IsConfiguration(err))
	})
}

type fakeLDAPClient struct {
	bindErr      error
	boundDN      string
	timeoutValue time.Duration
	closed       bool
}

func (f *fakeLDAPClient) Bind(username, password string) error {
	f.boundDN = username
	return f.bindErr
}

func (f *fakeLDAPClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLDAPClient) SetTimeout(d time.Duration) { f.timeoutValue = d }

func ldapConfig() *config.Config {
	return &config.Config{
		LDAPHost:          "ldap.udom.example",
		LDAPPort:          "636",
		LDAPBaseDN:        "ou=students,dc=udom,dc=example",
		LDAPUserAttribute: "uid",
		LDAPTimeoutSec:    5,
	}
}

func TestLDAPAuthenticator(t *testing.T) {
	orig := dialLDAP
	defer func() { dialLDAP = orig }()

	t.Run("successful bind", func(t *testing.T) {
		fake := &fakeLDAPClient{}
		dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
			assert.Equal(t, "ldap.udom.example:636", addr)
			return fake, nil
		}
		err := NewLDAPAuthenticator(ldapConfig()).Authenticate("T21-03-04512", "secret")
		require.NoError(t, err)
		assert.Equal(t, "uid=T21-03-04512,ou=students,dc=udom,dc=example", fake.boundDN)
		assert.Equal(t, 5*time.Second, fake.timeoutValue)
		assert.True(t, fake.closed)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		fake := &fakeLDAPClient{bindErr: ldap.NewError(ldap.LDAPResultInvalidCredentials, errors.New("bad"))}
		dialLDAP = func(string, string, *tls.Config) (ldapClient, error) { return fake, nil }
		err := NewLDAPAuthenticator(ldapConfig()).Authenticate("T21-03-04512", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("dial failure", func(t *testing.T) {
		dialLDAP = func(string, string, *tls.Config) (ldapClient, error) { return nil, errors.New("dial failed") }
		err := NewLDAPAuthenticator(ldapConfig()).Authenticate("T21-03-04512", "secret")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dial failed")
	})

	t.Run("empty password never dials", func(t *testing.T) {
		dialLDAP = func(string, string, *tls.Config) (ldapClient, error) {
			t.Fatal("unexpected dial")
			return nil, nil
		}
		err := NewLDAPAuthenticator(ldapConfig()).Authenticate("T21-03-04512", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestNewAuthenticator(t *testing.T) {
	cfg := ldapConfig()
	assert.IsType(t, &LDAPAuthenticator{}, NewAuthenticator(cfg))

	assert.IsType(t, DevAuthenticator{}, NewAuthenticator(&config.Config{Environment: "development"}))
	assert.Nil(t, NewAuthenticator(&config.Config{Environment: "production"}))
}

func setupRouter(svc *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := NewAuthMiddleware(svc)
	h := NewAuthHandler(svc)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", mw.RequireAuth(), h.Me)
	r.GET("/admin", mw.RequireAuth(), mw.RequireAdmin(), func(c *gin.Context) {
		id, _ := GetVoterID(c)
		c.JSON(http.StatusOK, gin.H{"voter_id": id.String(), "admin": IsAdmin(c)})
	})
	return r
}

func TestMiddlewareAndHandlers(t *testing.T) {
	voter := newVoter("T21-03-04512", models.RoleVoter)
	admin := newVoter("ADMIN-001", models.RoleAdmin)
	svc := newTestService(t, stubAuthenticator{}, voter, admin)
	router := setupRouter(svc)

	voterToken, err := svc.GenerateJWT(voter)
	require.NoError(t, err)
	adminToken, err := svc.GenerateJWT(admin)
	require.NoError(t, err)

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("login", func(t *testing.T) {
		w := do(http.MethodPost, "/auth/login", "", `{"reg_no":"T21-03-04512","password":"pw"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("login missing fields", func(t *testing.T) {
		w := do(http.MethodPost, "/auth/login", "", `{"reg_no":"T21-03-04512"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("me requires header", func(t *testing.T) {
		w := do(http.MethodGet, "/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me rejects non bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me returns voter", func(t *testing.T) {
		w := do(http.MethodGet, "/auth/me", voterToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "T21-03-04512")
	})

	t.Run("admin route forbids voters", func(t *testing.T) {
		w := do(http.MethodGet, "/admin", voterToken, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin route allows admins", func(t *testing.T) {
		w := do(http.MethodGet, "/admin", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), admin.ID.String())
	})
}
