package view

import (
	"fmt"
	"net/url"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/effects"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"

	// carryKeyPrefix namespaces field values kept across a redirect.
	carryKeyPrefix = "carry:"
)

// FlashData is the set of toasts to show on the next render.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// FromNotifications converts recorded notifications into FlashData.
func FromNotifications(ns []effects.Notification) FlashData {
	var f FlashData
	for _, n := range ns {
		switch n.Level {
		case effects.LevelSuccess:
			f.Success = append(f.Success, n.Message)
		case effects.LevelFailure:
			f.Error = append(f.Error, n.Message)
		}
	}
	return f
}

// SaveNotifications stores notifications as flashes so they survive a redirect.
func SaveNotifications(c echo.Context, ns []effects.Notification) error {
	return SaveRedirect(c, ns, nil)
}

// SaveRedirect stores notifications and carried form values in one session
// save. Empty carried values are skipped.
func SaveRedirect(c echo.Context, ns []effects.Notification, carry url.Values) error {
	if len(ns) == 0 && len(carry) == 0 {
		return nil
	}
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return fmt.Errorf("load flash session: %w", err)
	}
	for _, n := range ns {
		if n.Level == effects.LevelSuccess {
			sess.AddFlash(n.Message, flashKeySuccess)
		} else {
			sess.AddFlash(n.Message, flashKeyError)
		}
	}
	for key := range carry {
		if v := carry.Get(key); v != "" {
			sess.AddFlash(v, carryKeyPrefix+key)
		}
	}
	return sess.Save(c.Request(), c.Response())
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns; the session is saved below to persist that.
	for _, f := range sess.Flashes(flashKeySuccess) {
		if s, ok := f.(string); ok {
			data.Success = append(data.Success, s)
		}
	}
	for _, f := range sess.Flashes(flashKeyError) {
		if s, ok := f.(string); ok {
			data.Error = append(data.Error, s)
		}
	}

	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

// TakeCarriedValues retrieves and clears the values stored by SaveRedirect for
// the given keys.
func TakeCarriedValues(c echo.Context, keys ...string) url.Values {
	values := url.Values{}

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return values
	}
	for _, key := range keys {
		for _, f := range sess.Flashes(carryKeyPrefix + key) {
			if s, ok := f.(string); ok {
				values.Set(key, s)
			}
		}
	}
	if len(values) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return values
}
