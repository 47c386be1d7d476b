package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// MaxNameLength bounds the display name carried in a session.
const MaxNameLength = 100

// Session is the identity carried by a session token. There are no
// accounts: a session is just a display name the client chose.
type Session struct {
	ID        string
	Name      string
	ExpiresAt time.Time
}

// SessionManager issues and validates HS256 session tokens.
// secret must be at least 32 characters.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a new session manager.
func NewSessionManager(secret, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// Issue signs a token for the display name. The name is trimmed and must
// be non-empty; a bad name is a domain.ValidationError.
func (m *SessionManager) Issue(name string) (string, Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", Session{}, domain.NewValidationError("name", "required")
	}
	if len(name) > MaxNameLength {
		return "", Session{}, domain.NewValidationError("name", "max 100 characters")
	}

	now := m.now()
	s := Session{
		ID:        uuid.NewString(),
		Name:      name,
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.ID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, s, nil
}

// Validate parses and validates a session token.
func (m *SessionManager) Validate(tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return Session{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("invalid token claims")
	}
	if strings.TrimSpace(claims.Name) == "" {
		return Session{}, fmt.Errorf("token has no name")
	}

	s := Session{ID: claims.ID, Name: claims.Name}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
