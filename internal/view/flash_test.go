package view_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/effects"
	"github.com/nfrund/lateslip-portal/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the session is initialized in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		require.NoError(t, view.SaveNotifications(c, []effects.Notification{
			{Level: effects.LevelSuccess, Message: "User logged in successfully"},
		}))

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"User logged in successfully"}, flashes.Success)
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		require.NoError(t, view.SaveNotifications(c, []effects.Notification{
			{Level: effects.LevelFailure, Message: "Invalid Email or password!"},
		}))

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Invalid Email or password!"}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("SaveNotifications keeps levels apart", func(t *testing.T) {
		c, _ := setupTestContext()

		err := view.SaveNotifications(c, []effects.Notification{
			{Level: effects.LevelSuccess, Message: "ok"},
			{Level: effects.LevelFailure, Message: "bad"},
		})
		require.NoError(t, err)

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"ok"}, flashes.Success)
		assert.Equal(t, []string{"bad"}, flashes.Error)
	})
}

func TestCarriedValues(t *testing.T) {
	t.Run("SaveRedirect keeps toasts and values together", func(t *testing.T) {
		c, rec := setupTestContext()

		err := view.SaveRedirect(c,
			[]effects.Notification{{Level: effects.LevelSuccess, Message: "Signed up"}},
			url.Values{"email": {"a@b.com"}, "username": {""}})
		require.NoError(t, err)
		assert.Len(t, rec.Result().Cookies(), 1, "one session save")

		carried := view.TakeCarriedValues(c, "email", "username")
		assert.Equal(t, url.Values{"email": {"a@b.com"}}, carried)
		assert.Equal(t, []string{"Signed up"}, view.GetFlashData(c).Success)

		assert.Empty(t, view.TakeCarriedValues(c, "email"), "values are cleared after being read")
	})

	t.Run("nothing to save writes no cookie", func(t *testing.T) {
		c, rec := setupTestContext()

		require.NoError(t, view.SaveRedirect(c, nil, nil))
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestFromNotifications(t *testing.T) {
	f := view.FromNotifications([]effects.Notification{
		{Level: effects.LevelFailure, Message: "Failed SignUp. User already exists!"},
	})
	assert.Equal(t, []string{"Failed SignUp. User already exists!"}, f.Error)
	assert.Empty(t, f.Success)
}
