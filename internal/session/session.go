// Package session implements the server-signed cookie that maps a client
// to a user ID across requests. The cookie value is an HS256 token holding
// a single subject claim; the server keeps no per-session state.
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "recipebook_session"

	issuer   = "recipebook-api"
	audience = "recipebook-client"
	lifetime = 7 * 24 * time.Hour
)

// Manager issues, reads and clears the signed session cookie.
type Manager struct {
	secret string
}

// NewManager creates a session manager signing with the given secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// Issue signs a token for userID and sets it as the session cookie.
func (m *Manager) Issue(c *fiber.Ctx, userID uint) error {
	if m.secret == "" {
		return fmt.Errorf("session secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": issuer,                                 // Issuer
		"aud": audience,                               // Audience
		"exp": now.Add(lifetime).Unix(),               // Expiration
		"iat": now.Unix(),                             // Issued at
		"nbf": now.Unix(),                             // Not before
		"jti": m.generateJTI(),                        // Unique token identifier
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(lifetime),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// UserID verifies the session cookie and returns the user ID it carries.
// The second return value is false when no valid session is present.
func (m *Manager) UserID(c *fiber.Ctx) (uint, bool) {
	tokenString := c.Cookies(CookieName)
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// Present reports whether the request carries a verifiable session. A
// cookie that fails verification counts as no session at all.
func (m *Manager) Present(c *fiber.Ctx) bool {
	_, ok := m.UserID(c)
	return ok
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// generateJTI creates a unique token ID to prevent replay attacks
func (m *Manager) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
