// Package token provides JWT access/refresh token generation and validation.
//
// Access and refresh tokens carry the same claim pair (userId, login) but are
// signed with separate secrets, so one can never be presented in place of the
// other.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homelib/server/pkg/apperr"
)

// Kind distinguishes access tokens from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims represents the JWT claims carried by both token kinds.
type Claims struct {
	UserID string `json:"userId"`
	Login  string `json:"login"`
	Kind   Kind   `json:"kind"`
	jwt.RegisteredClaims
}

// Pair holds a freshly issued access/refresh token pair.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Config holds token manager configuration.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessExpiry  time.Duration // Default: 15 minutes
	RefreshExpiry time.Duration // Default: 7 days
}

// Manager signs and verifies token pairs.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewManager creates a new token manager.
func NewManager(cfg *Config) *Manager {
	accessExpiry := cfg.AccessExpiry
	if accessExpiry == 0 {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry := cfg.RefreshExpiry
	if refreshExpiry == 0 {
		refreshExpiry = 7 * 24 * time.Hour
	}

	return &Manager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		issuer:        cfg.Issuer,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// GeneratePair issues a new access/refresh token pair for the user.
func (m *Manager) GeneratePair(userID, login string) (*Pair, error) {
	access, err := m.sign(userID, login, KindAccess, m.accessSecret, m.accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(userID, login, KindRefresh, m.refreshSecret, m.refreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// ValidateAccess validates an access token and returns its claims.
// A refresh token presented here fails validation.
func (m *Manager) ValidateAccess(tokenString string) (*Claims, error) {
	claims, err := m.parse(tokenString, m.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != KindAccess {
		return nil, apperr.ErrUnauthorized.WithMessage("Invalid access token")
	}
	return claims, nil
}

// ValidateRefresh validates a refresh token and returns its claims.
// An access token presented here fails validation.
func (m *Manager) ValidateRefresh(tokenString string) (*Claims, error) {
	claims, err := m.parse(tokenString, m.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.Kind != KindRefresh {
		return nil, apperr.ErrForbidden.WithMessage("Invalid refresh token")
	}
	return claims, nil
}

// AccessExpiry returns the access token lifetime.
func (m *Manager) AccessExpiry() time.Duration {
	return m.accessExpiry
}

// RefreshExpiry returns the refresh token lifetime.
func (m *Manager) RefreshExpiry() time.Duration {
	return m.refreshExpiry
}

func (m *Manager) sign(userID, login string, kind Kind, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Login:  login,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func (m *Manager) parse(tokenString string, secret []byte) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, apperr.ErrUnauthorized.WithMessage("Invalid or expired token").WithError(err)
	}
	if !t.Valid {
		return nil, apperr.ErrUnauthorized.WithMessage("Invalid or expired token")
	}
	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil, apperr.ErrUnauthorized.WithMessage("Invalid or expired token")
	}
	return claims, nil
}
