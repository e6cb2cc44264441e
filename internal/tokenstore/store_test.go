package tokenstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// exerciseStore runs the get/set/clear contract against any Store.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "a new store should be empty")

	require.NoError(t, s.Set(ctx, "T1"))
	token, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "T1", token)

	require.NoError(t, s.Set(ctx, "T2"))
	token, _, _ = s.Get(ctx)
	assert.Equal(t, "T2", token, "Set should replace the previous token")

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Clear(ctx), "clearing an empty store is not an error")
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	exerciseStore(t, m)
	assert.Equal(t, 4, m.Writes())
}

func TestFileStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	s := NewFileStore(memFs, "/home/admin/.config/lateslip-portal/token")

	exerciseStore(t, s)

	t.Run("persists across instances", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "T3"))

		reopened := NewFileStore(memFs, s.Path())
		token, ok, err := reopened.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "T3", token)
	})
}

func TestSessionStore(t *testing.T) {
	e := echo.New()
	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))

	var captured echo.Context
	handler := session.Middleware(cookieStore)(func(c echo.Context) error {
		captured = c
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	exerciseStore(t, ForRequest(captured))

	t.Run("writes the token under the token key", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, ForRequest(captured).Set(ctx, "T1"))

		sess, err := session.Get(SessionName, captured)
		require.NoError(t, err)
		assert.Equal(t, "T1", sess.Values["token"])
		assert.NotEmpty(t, captured.Response().Header().Values("Set-Cookie"))
	})
}
