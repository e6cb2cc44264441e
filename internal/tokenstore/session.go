package tokenstore

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/domain"
)

// SessionName is the cookie session that carries the token.
const SessionName = "auth-session"

// SessionStore keeps the token in the browser's signed session cookie. It is
// bound to a single request; use ForRequest to get one per echo.Context.
type SessionStore struct {
	c echo.Context
}

// ForRequest returns a Store backed by the session of the current request.
// The session middleware must run before it is used.
func ForRequest(c echo.Context) *SessionStore {
	return &SessionStore{c: c}
}

func (s *SessionStore) Get(ctx context.Context) (string, bool, error) {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return "", false, fmt.Errorf("load auth session: %w", err)
	}
	token, ok := sess.Values[domain.TokenKey].(string)
	return token, ok && token != "", nil
}

func (s *SessionStore) Set(ctx context.Context, token string) error {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return fmt.Errorf("load auth session: %w", err)
	}
	sess.Values[domain.TokenKey] = token
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		return fmt.Errorf("save auth session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return fmt.Errorf("load auth session: %w", err)
	}
	delete(sess.Values, domain.TokenKey)
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		return fmt.Errorf("save auth session: %w", err)
	}
	return nil
}
