package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FakeBackend is an in-memory stand-in for the admin API the portal talks to.
// It answers POST /admin/login and POST /admin/register the way the real
// service does and signs login tokens with an HS256 key.
type FakeBackend struct {
	Server *httptest.Server

	mu    sync.Mutex
	users map[string]fakeUser
	calls map[string]int
	key   []byte
}

type fakeUser struct {
	ID       string
	Fullname string
	Email    string
	Password string
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{
		users: make(map[string]fakeUser),
		calls: make(map[string]int),
		key:   []byte("fake-backend-signing-key"),
	}

	e := echo.New()
	e.HideBanner = true
	e.POST("/admin/login", fb.login)
	e.POST("/admin/register", fb.register)

	fb.Server = httptest.NewServer(e)
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL is the origin to point the portal at.
func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

// AddUser registers an account directly.
func (fb *FakeBackend) AddUser(fullname, email, password string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.users[email] = fakeUser{ID: uuid.NewString(), Fullname: fullname, Email: email, Password: password}
}

// HasUser reports whether an account exists for email.
func (fb *FakeBackend) HasUser(email string) bool {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	_, ok := fb.users[email]
	return ok
}

// Calls returns how often path was hit.
func (fb *FakeBackend) Calls(path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls[path]
}

func (fb *FakeBackend) login(c echo.Context) error {
	var body loginBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request"})
	}

	fb.mu.Lock()
	fb.calls[c.Path()]++
	user, ok := fb.users[body.Email]
	fb.mu.Unlock()

	if !ok || user.Password != body.Password {
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid email or password"})
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(fb.key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Login successful", "token": token})
}

func (fb *FakeBackend) register(c echo.Context) error {
	var body registerBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request"})
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.calls[c.Path()]++
	if _, exists := fb.users[body.Email]; exists {
		return c.JSON(http.StatusConflict, map[string]any{"success": false, "error": "User already exists"})
	}
	user := fakeUser{ID: uuid.NewString(), Fullname: body.Fullname, Email: body.Email, Password: body.Password}
	fb.users[body.Email] = user
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Admin registered successfully",
		"user":    map[string]any{"id": user.ID, "fullname": user.Fullname, "email": user.Email},
	})
}
