// Package login exposes the username/password login endpoint. The host
// application mounts it behind session.Resolver.Middleware; on success the
// issued session key is written back as the session cookie.
package login

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/exauth/pkg/logger"
	"github.com/dmitrymomot/exauth/pkg/session"
)

// Service handles login requests against the request's resolved session.
type Service struct {
	resolver  *session.Resolver
	transport session.Transport
	log       *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTransport overrides the default cookie transport.
func WithTransport(t session.Transport) Option {
	return func(s *Service) {
		if t != nil {
			s.transport = t
		}
	}
}

// NewService creates the login service. The default transport writes the
// session key as the cookie named in the resolver's configuration.
func NewService(resolver *session.Resolver, opts ...Option) *Service {
	cfg := resolver.Config()
	s := &Service{
		resolver:  resolver,
		transport: session.NewCookieTransport(cfg.CookieName, cfg.SecureCookies),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the mountable login router.
//
//	r.Mount("/login", loginSvc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.handleLogin)
	return r
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Realname string `json:"realname"`
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request"})
		return
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		// The session middleware is not mounted; this is a wiring bug,
		// not a client error.
		s.log.ErrorContext(r.Context(), "no session in request context",
			logger.Component("login"),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_server_error"})
		return
	}

	key, err := s.resolver.Login(r.Context(), sess, creds.Username, creds.Password)
	if err != nil {
		// Invalid credentials and persistence failures answer identically:
		// the response shape must not reveal which one happened.
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	user, _ := sess.User()
	s.transport.SetKey(w, key)
	writeJSON(w, http.StatusOK, userResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Realname: user.Realname,
	})
}

// decodeCredentials accepts JSON bodies and classic form posts.
func decodeCredentials(r *http.Request) (credentials, bool) {
	var creds credentials

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return credentials{}, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return credentials{}, false
		}
		creds.Username = r.PostFormValue("username")
		creds.Password = r.PostFormValue("password")
	}

	if creds.Username == "" || creds.Password == "" {
		return credentials{}, false
	}
	return creds, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
