package authform

import (
	"net/url"
	"testing"

	"github.com/nfrund/lateslip-portal/internal/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Fields(t *testing.T) {
	t.Run("login mode has no username field", func(t *testing.T) {
		f := New(ModeLogin)
		assert.Equal(t, []Field{FieldEmail, FieldPassword}, f.Fields())
		assert.False(t, f.HasField(FieldUsername))
	})

	t.Run("registration mode has a username field", func(t *testing.T) {
		f := New(ModeRegistration)
		assert.Equal(t, []Field{FieldUsername, FieldEmail, FieldPassword}, f.Fields())
		assert.True(t, f.HasField(FieldUsername))
	})
}

func TestForm_Values(t *testing.T) {
	f := New(ModeRegistration)

	_, ok := f.Value(FieldEmail)
	assert.False(t, ok, "fields are unset until first input")

	f.Set(FieldEmail, "")
	v, ok := f.Value(FieldEmail)
	assert.True(t, ok, "typing then deleting still counts as input")
	assert.Empty(t, v)

	login := New(ModeLogin)
	login.Set(FieldUsername, "ghost")
	_, ok = login.Value(FieldUsername)
	assert.False(t, ok, "input for a hidden field is dropped")
}

func TestForm_Submit(t *testing.T) {
	t.Run("login mode produces the email/password tuple", func(t *testing.T) {
		f := New(ModeLogin)
		f.Set(FieldEmail, "a@b.com")
		f.Set(FieldPassword, "pw1")

		s, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, LoginSubmission{Email: "a@b.com", Password: "pw1"}, s)
		assert.Equal(t, ModeLogin, s.Mode())
	})

	t.Run("login mode submits empty fields without validation", func(t *testing.T) {
		f := New(ModeLogin)

		s, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, LoginSubmission{}, s)
	})

	t.Run("registration mode produces the username/email/password tuple", func(t *testing.T) {
		f := New(ModeRegistration)
		f.Set(FieldUsername, "user1")
		f.Set(FieldEmail, "a@b.com")
		f.Set(FieldPassword, "pw1")

		s, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, RegistrationSubmission{Username: "user1", Email: "a@b.com", Password: "pw1"}, s)
		assert.Equal(t, ModeRegistration, s.Mode())
	})

	t.Run("runs the validation policy", func(t *testing.T) {
		f := New(ModeRegistration, WithValidation(RequiredFields()))
		f.Set(FieldEmail, "a@b.com")

		_, err := f.Submit()
		assert.Error(t, err)
	})
}

func TestForm_PasswordHint(t *testing.T) {
	f := New(ModeLogin)
	assert.False(t, f.TypingPassword())

	f.Focus(FieldPassword)
	assert.True(t, f.TypingPassword())

	f.Focus(FieldEmail)
	assert.True(t, f.TypingPassword(), "other fields do not affect the hint")
	f.Blur(FieldEmail)
	assert.True(t, f.TypingPassword())

	f.Blur(FieldPassword)
	assert.False(t, f.TypingPassword())

	f.Focus(FieldUsername)
	assert.False(t, f.TypingPassword())
}

func TestForm_NavigateSibling(t *testing.T) {
	t.Run("login links to sign up", func(t *testing.T) {
		f := New(ModeLogin)
		f.Set(FieldEmail, "a@b.com")
		f.Set(FieldPassword, "pw1")
		rec := effects.NewRecorder()

		f.NavigateSibling(rec)
		f.NavigateSibling(rec)

		assert.Equal(t, []string{"/signUp", "/signUp"}, rec.Navigations())
		email, _ := f.Value(FieldEmail)
		password, _ := f.Value(FieldPassword)
		assert.Equal(t, "a@b.com", email, "navigation leaves field state alone")
		assert.Equal(t, "pw1", password)
	})

	t.Run("registration links to login", func(t *testing.T) {
		f := New(ModeRegistration)
		f.Set(FieldUsername, "user1")
		rec := effects.NewRecorder()

		f.NavigateSibling(rec)

		target, ok := rec.Target()
		require.True(t, ok)
		assert.Equal(t, "/login", target)
		username, _ := f.Value(FieldUsername)
		assert.Equal(t, "user1", username)
	})
}

func TestForm_Succeeded(t *testing.T) {
	t.Run("without a hook fields are kept", func(t *testing.T) {
		f := New(ModeLogin)
		f.Set(FieldEmail, "a@b.com")

		f.Succeeded()

		_, ok := f.Value(FieldEmail)
		assert.True(t, ok)
	})

	t.Run("ClearFields resets every field", func(t *testing.T) {
		f := New(ModeRegistration, WithOnSuccess(ClearFields))
		f.Set(FieldUsername, "user1")
		f.Set(FieldEmail, "a@b.com")

		f.Succeeded()

		for _, field := range f.Fields() {
			_, ok := f.Value(field)
			assert.False(t, ok, "field %s should be cleared", field)
		}
	})
}

func TestForm_BindForm(t *testing.T) {
	f := New(ModeLogin)
	f.BindForm(url.Values{
		"form_id":  {"form-123"},
		"email":    {"a@b.com"},
		"username": {"ignored"},
	})

	assert.Equal(t, "form-123", f.ID())
	email, ok := f.Value(FieldEmail)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", email)
	_, ok = f.Value(FieldPassword)
	assert.False(t, ok, "absent keys stay unset")
	_, ok = f.Value(FieldUsername)
	assert.False(t, ok)
}

func TestNew_Defaults(t *testing.T) {
	a := New(ModeLogin)
	b := New(ModeLogin)
	assert.NotEqual(t, a.ID(), b.ID(), "each form instance gets its own id")
	assert.Equal(t, "/login", a.Action())

	r := New(ModeRegistration, WithAction("/"), WithID("fixed"))
	assert.Equal(t, "/", r.Action())
	assert.Equal(t, "fixed", r.ID())
}
