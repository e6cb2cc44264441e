package app

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/nfrund/lateslip-portal/internal/handlers"
	"github.com/nfrund/lateslip-portal/internal/logging"
	"github.com/nfrund/lateslip-portal/internal/server"
	"github.com/nfrund/lateslip-portal/internal/testutils"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInjector(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	cfg := testutils.ConfigForTests(t, map[string]string{"BACKEND_ORIGIN": fb.URL()})

	i := NewInjector(cfg)

	srv, err := do.Invoke[*server.Server](i)
	require.NoError(t, err)
	assert.NotNil(t, srv.E)

	a := do.MustInvoke[*handlers.AuthHandler](i)
	b := do.MustInvoke[*handlers.AuthHandler](i)
	assert.Same(t, a, b, "services are singletons")
}

func TestNewInjector_BadGuard(t *testing.T) {
	cfg := testutils.ConfigForTests(t, nil)
	cfg.SubmitGuard = "sometimes"

	_, err := do.Invoke[*authform.Guard](NewInjector(cfg))
	assert.Error(t, err)
}

// syncBuffer is written by the bus goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditTrail(t *testing.T) {
	var buf syncBuffer
	prev := slog.Default()
	slog.SetDefault(logging.NewWithWriter(&buf, "json", "info"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	fb := testutils.NewFakeBackend(t)
	fb.AddUser("Ada", "ada@college.edu", "pw1")
	cfg := testutils.ConfigForTests(t, map[string]string{"BACKEND_ORIGIN": fb.URL()})
	i := NewInjector(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, StartAudit(ctx, i))

	srv := do.MustInvoke[*server.Server](i)
	form := url.Values{"email": {"ada@college.edu"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), `"topic":"auth.login.failed"`)
	}, 2*time.Second, 10*time.Millisecond)
	assert.NotContains(t, buf.String(), "wrong", "passwords never reach the log")
}
