package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/exauth/pkg/session"
)

func TestCookieTransport(t *testing.T) {
	t.Parallel()

	t.Run("set and get round trip", func(t *testing.T) {
		t.Parallel()

		transport := session.NewCookieTransport("EXAUTH", false)

		w := httptest.NewRecorder()
		transport.SetKey(w, "the-session-key")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "EXAUTH", c.Name)
		assert.Equal(t, "the-session-key", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.Secure)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(c)
		assert.Equal(t, "the-session-key", transport.GetKey(r))
	})

	t.Run("absent cookie reads empty", func(t *testing.T) {
		t.Parallel()

		transport := session.NewCookieTransport("EXAUTH", false)
		assert.Empty(t, transport.GetKey(httptest.NewRequest("GET", "/", nil)))
	})

	t.Run("secure flag", func(t *testing.T) {
		t.Parallel()

		transport := session.NewCookieTransport("EXAUTH", true)
		w := httptest.NewRecorder()
		transport.SetKey(w, "key")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		t.Parallel()

		transport := session.NewCookieTransport("EXAUTH", false)
		w := httptest.NewRecorder()
		transport.ClearKey(w)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})
}
