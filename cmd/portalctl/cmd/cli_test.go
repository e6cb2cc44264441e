package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nfrund/lateslip-portal/internal/pages"
	"github.com/nfrund/lateslip-portal/internal/testutils"
	"github.com/nfrund/lateslip-portal/internal/tokenstore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenPath = "/home/admin/.config/lateslip-portal/token"

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, fsys afero.Fs, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(fsys)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--token-file", tokenPath))
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func storedToken(t *testing.T, fsys afero.Fs) (string, bool) {
	t.Helper()
	token, ok, err := tokenstore.NewFileStore(fsys, tokenPath).Get(context.Background())
	require.NoError(t, err)
	return token, ok
}

func TestLogin(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.AddUser("Ada", "ada@college.edu", "pw1")

	t.Run("success stores the token", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		res := run(t, fsys, "", "login", "--backend", fb.URL(), "--email", "ada@college.edu", "--password", "pw1")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, pages.MsgLoginSucceeded)
		assert.Contains(t, res.stdout, "Next: /adminDashboard")
		token, ok := storedToken(t, fsys)
		assert.True(t, ok)
		assert.NotEmpty(t, token)
	})

	t.Run("password from stdin", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		res := run(t, fsys, "pw1\n", "login", "--backend", fb.URL(), "--email", "ada@college.edu")

		require.NoError(t, res.err)
		_, ok := storedToken(t, fsys)
		assert.True(t, ok)
	})

	t.Run("wrong password stores nothing", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		res := run(t, fsys, "", "login", "--backend", fb.URL(), "--email", "ada@college.edu", "--password", "nope")

		assert.ErrorIs(t, res.err, errSubmitFailed)
		assert.Contains(t, res.stderr, pages.MsgLoginFailed)
		assert.NotContains(t, res.stdout, "Next:")
		_, ok := storedToken(t, fsys)
		assert.False(t, ok)
	})

	t.Run("required validation stops before the backend", func(t *testing.T) {
		before := fb.Calls("/admin/login")
		res := run(t, afero.NewMemMapFs(), "", "login", "--backend", fb.URL(), "--validate", "required", "--password", "pw1")

		assert.Error(t, res.err)
		assert.Contains(t, res.stderr, pages.MsgMissingFields)
		assert.Equal(t, before, fb.Calls("/admin/login"))
	})
}

func TestRegister(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fsys := afero.NewMemMapFs()

	res := run(t, fsys, "", "register", "--backend", fb.URL(),
		"--username", "Ada", "--email", "ada@college.edu", "--password", "pw1")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, pages.MsgRegistrationSucceeded)
	assert.Contains(t, res.stdout, "Next: /login")
	assert.True(t, fb.HasUser("ada@college.edu"))
	_, ok := storedToken(t, fsys)
	assert.False(t, ok, "registration stores no token")

	res = run(t, fsys, "", "register", "--backend", fb.URL(),
		"--username", "Ada", "--email", "ada@college.edu", "--password", "pw1")
	assert.Error(t, res.err)
	assert.Contains(t, res.stderr, pages.MsgRegistrationFailed)
}

func TestTokenAndLogout(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.AddUser("Ada", "ada@college.edu", "pw1")
	fsys := afero.NewMemMapFs()

	res := run(t, fsys, "", "token")
	assert.ErrorIs(t, res.err, errNoToken)

	require.NoError(t, run(t, fsys, "", "login", "--backend", fb.URL(), "--email", "ada@college.edu", "--password", "pw1").err)
	token, _ := storedToken(t, fsys)

	res = run(t, fsys, "", "token")
	require.NoError(t, res.err)
	assert.Equal(t, token+"\n", res.stdout)

	res = run(t, fsys, "", "token", "--claims")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"role": "admin"`)

	res = run(t, fsys, "", "logout")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Logged out")
	_, ok := storedToken(t, fsys)
	assert.False(t, ok)
}

func TestVersion(t *testing.T) {
	res := run(t, afero.NewMemMapFs(), "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "portalctl v0.1.0\n", res.stdout)
}

func TestConfigError(t *testing.T) {
	t.Setenv("FORM_VALIDATION", "strict")
	fb := testutils.NewFakeBackend(t)

	res := run(t, afero.NewMemMapFs(), "", "login", "--backend", fb.URL(), "--email", "ada@college.edu", "--password", "pw1")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid FORM_VALIDATION")
	assert.Zero(t, fb.Calls("/admin/login"))
}
