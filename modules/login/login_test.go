package login_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/exauth/modules/login"
	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/session"
	"github.com/dmitrymomot/exauth/pkg/token"
)

type stubConn struct{}

func (stubConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (stubConn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (stubConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (stubConn) Release() {}

type stubPool struct {
	exhausted bool
}

func (p *stubPool) Acquire(ctx context.Context) (session.Conn, error) {
	if p.exhausted {
		return nil, errors.New("acquire timeout: pool exhausted")
	}
	return stubConn{}, nil
}

// setupApp wires middleware, login module and a protected probe route the
// way a host application would.
func setupApp(t *testing.T) (http.Handler, *session.MemoryStore) {
	t.Helper()

	store := session.NewMemoryStore()
	authn := auth.NewMemoryAuthenticator()
	alice, err := authn.Register("alice", "Alice Liddell", "secret123")
	require.NoError(t, err)
	store.AddUser(*alice)

	resolver := session.NewResolver(&stubPool{}, store, authn)

	r := chi.NewRouter()
	r.Use(resolver.Middleware)
	r.Mount("/login", login.NewService(resolver).Handle())
	r.Get("/whoami", func(w http.ResponseWriter, req *http.Request) {
		if user, ok := session.UserFromContext(req.Context()); ok {
			_ = json.NewEncoder(w).Encode(map[string]string{"username": user.Username})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	return r, store
}

func postForm(handler http.Handler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	r := httptest.NewRequest("POST", "/login/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("valid form credentials set the session cookie", func(t *testing.T) {
		t.Parallel()

		app, store := setupApp(t)
		w := postForm(app, "alice", "secret123")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "Alice Liddell", body["realname"])

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "EXAUTH", c.Name)
		assert.Len(t, c.Value, 48)
		for _, r := range c.Value {
			assert.Contains(t, token.Alphabet, string(r))
		}
		assert.True(t, c.HttpOnly)

		// The issued key must resolve back to the user on the next request.
		user, err := store.Resolve(context.Background(), nil, c.Value)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("valid json credentials", func(t *testing.T) {
		t.Parallel()

		app, _ := setupApp(t)

		r := httptest.NewRequest("POST", "/login/", strings.NewReader(`{"username":"alice","password":"secret123"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		app.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Result().Cookies(), 1)
	})

	t.Run("wrong password answers 401 without a cookie", func(t *testing.T) {
		t.Parallel()

		app, store := setupApp(t)
		w := postForm(app, "alice", "wrongpass")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Zero(t, store.Len())
	})

	t.Run("unknown user answers like wrong password", func(t *testing.T) {
		t.Parallel()

		app, _ := setupApp(t)

		wrongUser := postForm(app, "nobody", "secret123")
		wrongPass := postForm(app, "alice", "wrongpass")

		assert.Equal(t, wrongPass.Code, wrongUser.Code)
		assert.Equal(t, wrongPass.Body.String(), wrongUser.Body.String())
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		t.Parallel()

		app, _ := setupApp(t)
		w := postForm(app, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("issued cookie authenticates the next request", func(t *testing.T) {
		t.Parallel()

		app, _ := setupApp(t)
		loginResp := postForm(app, "alice", "secret123")
		require.Equal(t, http.StatusOK, loginResp.Code)
		cookies := loginResp.Result().Cookies()
		require.Len(t, cookies, 1)

		r := httptest.NewRequest("GET", "/whoami", nil)
		r.AddCookie(cookies[0])
		w := httptest.NewRecorder()
		app.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("anonymous request to protected route answers 401", func(t *testing.T) {
		t.Parallel()

		app, _ := setupApp(t)

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("exhausted pool answers 500, not anonymous", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		authn := auth.NewMemoryAuthenticator()
		resolver := session.NewResolver(&stubPool{exhausted: true}, store, authn)

		r := chi.NewRouter()
		r.Use(resolver.Middleware)
		r.Mount("/login", login.NewService(resolver).Handle())

		w := postForm(r, "alice", "secret123")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
