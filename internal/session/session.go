package session

import (
	"net/http"
	"sync"
)

// Session holds the bearer token used against the remote order store and the
// rider directory. It is injected explicitly instead of living in package
// state, so login/logout is an Init/Clear on one object.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New returns a session initialized with the given token. An empty token
// means "not logged in".
func New(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token, or "" after Clear.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the bearer token (login / token refresh).
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the token. Called when the upstream answers 401, so the next
// request fails fast until a new token is set.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Active reports whether a token is present.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Authorize attaches the bearer token to an outbound request.
func (s *Session) Authorize(req *http.Request) {
	if tok := s.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}
