// Package session reads and writes the client-side session token.
//
// The token is opaque to this application: a non-empty value means the
// visitor is authenticated. Nothing here verifies signatures or expiry.
package session

import (
	"net/http"
	"sync"
	"time"
)

// CookieName is the name of the cookie holding the session token.
const CookieName = "token"

// Store is the key-value storage the session token lives in. Handlers and the
// route guard receive it as a dependency so tests can substitute a fake.
type Store interface {
	// Token returns the session token carried by the request, if any.
	// An empty cookie value counts as absent.
	Token(r *http.Request) (string, bool)

	// SetToken persists the token for subsequent requests.
	SetToken(w http.ResponseWriter, token string)
}

// CookieStore keeps the token in the browser's cookie jar.
type CookieStore struct {
	// Secure marks the cookie HTTPS-only.
	Secure bool
	// MaxAge bounds the cookie lifetime. Zero makes it a browser-session cookie.
	MaxAge time.Duration
}

// NewCookieStore creates a CookieStore.
func NewCookieStore(secure bool, maxAge time.Duration) *CookieStore {
	return &CookieStore{Secure: secure, MaxAge: maxAge}
}

// Token implements Store.
func (s *CookieStore) Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// SetToken implements Store.
func (s *CookieStore) SetToken(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.MaxAge > 0 {
		cookie.MaxAge = int(s.MaxAge.Seconds())
		cookie.Expires = time.Now().UTC().Add(s.MaxAge)
	}
	http.SetCookie(w, cookie)
}

// MemoryStore holds a single token in memory, standing in for one browser.
// It ignores the request and response entirely.
type MemoryStore struct {
	mu     sync.Mutex
	token  string
	writes int
}

// NewMemoryStore creates a MemoryStore preloaded with token (may be empty).
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

// Token implements Store.
func (s *MemoryStore) Token(*http.Request) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetToken implements Store.
func (s *MemoryStore) SetToken(_ http.ResponseWriter, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.writes++
}

// Writes returns how many times SetToken has been called.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
