package auth

import (
	"crypto/tls"
	"fmt"
	"time"

	"voteverse-backend/internal/config"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/logger"

	"github.com/go-ldap/ldap/v3"
)

// Authenticator checks a voter's password
type Authenticator interface {
	Authenticate(regNo, password string) error
}

// ldapClient is the subset of *ldap.Conn used here
type ldapClient interface {
	Bind(username, password string) error
	Close() error
	SetTimeout(time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// LDAPAuthenticator binds to the university directory as the voter
type LDAPAuthenticator struct {
	cfg *config.Config
}

// NewLDAPAuthenticator creates a directory authenticator
func NewLDAPAuthenticator(cfg *config.Config) *LDAPAuthenticator {
	return &LDAPAuthenticator{cfg: cfg}
}

// UserDN builds the bind DN for a registration number
func (a *LDAPAuthenticator) UserDN(regNo string) string {
	return fmt.Sprintf("%s=%s,%s", a.cfg.LDAPUserAttribute, ldap.EscapeDN(regNo), a.cfg.LDAPBaseDN)
}

// Authenticate performs a simple bind. Any bind failure is reported as invalid credentials.
func (a *LDAPAuthenticator) Authenticate(regNo, password string) error {
	if regNo == "" || password == "" {
		return apperrors.ErrInvalidCredentials
	}

	addr := a.cfg.LDAPHost + ":" + a.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: a.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer l.Close()

	if a.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(a.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(a.UserDN(regNo), password); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
			return apperrors.ErrInvalidCredentials
		}
		logger.New().WithVoter(regNo).WithError(err).Warn("directory bind failed")
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// DevAuthenticator accepts any non-empty password. It is only wired in development
// when no directory is configured.
type DevAuthenticator struct{}

func (DevAuthenticator) Authenticate(regNo, password string) error {
	if regNo == "" || password == "" {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// NewAuthenticator picks the directory authenticator when LDAP is configured,
// the development authenticator otherwise, and nil in production without LDAP.
func NewAuthenticator(cfg *config.Config) Authenticator {
	switch {
	case cfg.LDAPEnabled():
		return NewLDAPAuthenticator(cfg)
	case cfg.IsDevelopment():
		logger.New().Warn("LDAP is not configured; development login accepts any password")
		return DevAuthenticator{}
	default:
		return nil
	}
}
