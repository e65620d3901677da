package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// issueCookie runs Issue for userID through a throwaway app and returns the
// resulting session cookie.
func issueCookie(t *testing.T, m *Manager, userID uint) *http.Cookie {
	t.Helper()

	app := fiber.New()
	app.Post("/issue", func(c *fiber.Ctx) error {
		require.NoError(t, m.Issue(c, userID))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/issue", nil))
	require.NoError(t, err)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// readUserID runs UserID through a throwaway app for the given cookie.
func readUserID(t *testing.T, m *Manager, cookie *http.Cookie) (uint, bool) {
	t.Helper()

	var gotID uint
	var gotOK bool

	app := fiber.New()
	app.Get("/read", func(c *fiber.Ctx) error {
		gotID, gotOK = m.UserID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	_, err := app.Test(req)
	require.NoError(t, err)

	return gotID, gotOK
}

func TestIssueAndRead(t *testing.T) {
	m := NewManager("test_secret")

	cookie := issueCookie(t, m, 42)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	userID, ok := readUserID(t, m, cookie)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)
}

func TestReadWithoutCookie(t *testing.T) {
	m := NewManager("test_secret")

	_, ok := readUserID(t, m, nil)
	assert.False(t, ok)
}

func TestTamperedTokenRejected(t *testing.T) {
	m := NewManager("test_secret")

	cookie := issueCookie(t, m, 42)
	cookie.Value += "x"

	_, ok := readUserID(t, m, cookie)
	assert.False(t, ok)
}

func TestDifferentSecretRejected(t *testing.T) {
	issuer := NewManager("test_secret")
	verifier := NewManager("other_secret")

	cookie := issueCookie(t, issuer, 42)

	_, ok := readUserID(t, verifier, cookie)
	assert.False(t, ok)
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager("test_secret")

	app := fiber.New()
	app.Delete("/clear", func(c *fiber.Ctx) error {
		m.Clear(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/clear", nil))
	require.NoError(t, err)

	var cleared *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestIssueWithoutSecretFails(t *testing.T) {
	m := NewManager("")

	app := fiber.New()
	app.Post("/issue", func(c *fiber.Ctx) error {
		err := m.Issue(c, 1)
		assert.Error(t, err)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodPost, "/issue", nil))
	require.NoError(t, err)
}
