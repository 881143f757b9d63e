package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	cookieName   = "survey-session"
	keyUserID    = "user_id"
	cookieMaxAge = 14 * 24 * time.Hour
)

// ErrNoUser is returned when a request carries no logged-in session.
var ErrNoUser = errors.New("no user in session")

// Store keeps the logged-in user ID in a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a cookie-backed session store. secure restricts the cookie to HTTPS.
func NewStore(secret []byte, secure bool) *Store {
	cookies := sessions.NewCookieStore(secret)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}
}

// UserID returns the user ID stored in the request's session cookie.
func (s *Store) UserID(r *http.Request) (string, error) {
	session, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return "", fmt.Errorf("decoding session cookie: %w", err)
	}

	userID, ok := session.Values[keyUserID].(string)
	if !ok || userID == "" {
		return "", ErrNoUser
	}
	return userID, nil
}

// Login stores userID in a fresh session cookie written to w.
func (s *Store) Login(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := s.cookies.New(r, cookieName)
	if err != nil && session == nil {
		return fmt.Errorf("creating session: %w", err)
	}

	session.Values[keyUserID] = userID
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Logout expires the session cookie.
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) error {
	session, err := s.cookies.New(r, cookieName)
	if err != nil && session == nil {
		return fmt.Errorf("creating session: %w", err)
	}

	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
