package identity

import (
	"sync"
	"time"

	"github.com/devnest/cli/pkg/credentials"
	cerrors "github.com/devnest/cli/pkg/errors"
	"github.com/devnest/cli/pkg/logger"
)

// Session is a snapshot of the authenticated identity, or nil when logged
// out. It carries no token; tokens are fetched through FreshToken right
// before each call.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
}

// Subscription is the handle returned by Subscribe, used to stop receiving
// session-state changes.
type Subscription struct {
	id int
}

var (
	sessionMu   sync.Mutex
	subscribers = make(map[int]func(*Session))
	nextSubID   int
)

// Subscribe registers fn for session-state changes. It fires immediately
// with the current state, then again on every login and logout, mirroring
// the Identity Service's auth-state callback. Callers must pass the returned
// handle to Unsubscribe when the view goes away.
func Subscribe(fn func(*Session)) *Subscription {
	sessionMu.Lock()
	nextSubID++
	sub := &Subscription{id: nextSubID}
	subscribers[sub.id] = fn
	sessionMu.Unlock()

	fn(CurrentSession())
	return sub
}

// Unsubscribe removes a previously registered subscription
func Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sessionMu.Lock()
	delete(subscribers, sub.id)
	sessionMu.Unlock()
}

func notifySubscribers(s *Session) {
	sessionMu.Lock()
	fns := make([]func(*Session), 0, len(subscribers))
	for _, fn := range subscribers {
		fns = append(fns, fn)
	}
	sessionMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// CurrentSession returns the persisted session, or nil when logged out
func CurrentSession() *Session {
	creds, err := credentials.Load()
	if err != nil || creds == nil {
		return nil
	}
	return &Session{
		UserID:      creds.UserID,
		Email:       creds.Email,
		DisplayName: creds.DisplayName,
	}
}

// Establish persists a fresh token response as the active session and
// notifies subscribers of the login.
func Establish(tok *TokenResponse) (*credentials.Credentials, error) {
	creds := &credentials.Credentials{
		IDToken:      tok.IDToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		UserID:       tok.UserID,
		Email:        tok.Email,
		DisplayName:  tok.DisplayName,
	}

	if err := credentials.Save(creds); err != nil {
		return nil, err
	}

	notifySubscribers(&Session{
		UserID:      creds.UserID,
		Email:       creds.Email,
		DisplayName: creds.DisplayName,
	})

	return creds, nil
}

// Clear drops the active session and notifies subscribers of the logout
func Clear() error {
	if err := credentials.Delete(); err != nil {
		return err
	}
	notifySubscribers(nil)
	return nil
}

// FreshToken returns a bearer token valid right now, refreshing through the
// Identity Service when the persisted one has expired. Tokens are short-lived
// and must be obtained immediately before each authenticated call.
func FreshToken() (string, error) {
	creds, err := credentials.Load()
	if err != nil {
		return "", err
	}

	if creds == nil {
		return "", cerrors.AuthRequiredError()
	}

	if creds.IsValid() {
		return creds.IDToken, nil
	}

	logger.Debug("Id token expired, refreshing")

	tok, err := Refresh(creds.RefreshToken)
	if err != nil {
		return "", cerrors.SessionExpiredError()
	}

	creds.IDToken = tok.IDToken
	creds.ExpiresAt = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	if tok.RefreshToken != "" {
		creds.RefreshToken = tok.RefreshToken
	}

	if err := credentials.Save(creds); err != nil {
		logger.Error("Failed to save refreshed credentials", "error", err)
	}

	return creds.IDToken, nil
}
