// Package authform holds the interaction state of the shared login/sign-up
// form: which fields exist for a mode, what the user has typed, whether the
// password field has focus, and what a submit produces.
//
// A Form belongs to a single request and is not safe for concurrent use.
package authform

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/nfrund/lateslip-portal/internal/effects"
)

// Field names an input of the form. The values double as HTML input names.
type Field string

const (
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// FormIDField is the hidden input that identifies a rendered form instance.
const FormIDField = "form_id"

// Form is the state of one login or registration form.
type Form struct {
	id     string
	mode   Mode
	action string

	// values holds only fields the user has typed into.
	values         map[Field]string
	typingPassword bool

	policy    Policy
	onSuccess func(*Form)
}

// Option configures a Form.
type Option func(*Form)

// WithValidation sets the policy run by Submit. The default is NoValidation.
func WithValidation(p Policy) Option {
	return func(f *Form) { f.policy = p }
}

// WithOnSuccess registers a hook run by Succeeded.
func WithOnSuccess(fn func(*Form)) Option {
	return func(f *Form) { f.onSuccess = fn }
}

// WithID sets the form instance id instead of generating one.
func WithID(id string) Option {
	return func(f *Form) {
		if id != "" {
			f.id = id
		}
	}
}

// WithAction sets the path the form posts to. The default is the mode's path.
func WithAction(path string) Option {
	return func(f *Form) {
		if path != "" {
			f.action = path
		}
	}
}

// New creates an empty form for mode.
func New(mode Mode, opts ...Option) *Form {
	f := &Form{
		id:     uuid.NewString(),
		mode:   mode,
		action: mode.Path(),
		values: make(map[Field]string),
		policy: NoValidation(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) ID() string     { return f.id }
func (f *Form) Mode() Mode     { return f.mode }
func (f *Form) Action() string { return f.action }

// Fields lists the inputs shown for the form's mode, in display order.
func (f *Form) Fields() []Field {
	if f.mode == ModeRegistration {
		return []Field{FieldUsername, FieldEmail, FieldPassword}
	}
	return []Field{FieldEmail, FieldPassword}
}

// HasField reports whether field is shown in the form's mode.
func (f *Form) HasField(field Field) bool {
	for _, ff := range f.Fields() {
		if ff == field {
			return true
		}
	}
	return false
}

// Set records user input. Input for a field the mode does not show is dropped.
func (f *Form) Set(field Field, value string) {
	if !f.HasField(field) {
		return
	}
	f.values[field] = value
}

// Unset returns a field to its untouched state.
func (f *Form) Unset(field Field) {
	delete(f.values, field)
}

// Value returns the field's current input and whether the user has typed
// into it at all.
func (f *Form) Value(field Field) (string, bool) {
	v, ok := f.values[field]
	return v, ok
}

// Focus marks field as focused. Only the password field affects form state.
// Rendered pages mirror Focus and Blur in web/static/auth.js.
func (f *Form) Focus(field Field) {
	if field == FieldPassword {
		f.typingPassword = true
	}
}

// Blur marks field as no longer focused.
func (f *Form) Blur(field Field) {
	if field == FieldPassword {
		f.typingPassword = false
	}
}

// TypingPassword reports whether the password field has focus. The lock hint
// is hidden while it does.
func (f *Form) TypingPassword() bool {
	return f.typingPassword
}

// Submit builds the submission for the form's mode from the current state and
// runs the validation policy. Untouched fields submit as empty strings.
func (f *Form) Submit() (Submission, error) {
	var s Submission
	switch f.mode {
	case ModeRegistration:
		s = RegistrationSubmission{
			Username: f.values[FieldUsername],
			Email:    f.values[FieldEmail],
			Password: f.values[FieldPassword],
		}
	default:
		s = LoginSubmission{
			Email:    f.values[FieldEmail],
			Password: f.values[FieldPassword],
		}
	}
	if err := f.policy.Check(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Succeeded runs the on-success hook, if any.
func (f *Form) Succeeded() {
	if f.onSuccess != nil {
		f.onSuccess(f)
	}
}

// SiblingPath is the route of the other form.
func (f *Form) SiblingPath() string {
	return f.mode.SiblingPath()
}

// NavigateSibling switches to the other form. Field state is left as is.
func (f *Form) NavigateSibling(nav effects.Navigator) {
	nav.Navigate(f.SiblingPath())
}

// BindForm copies posted form values into the form. Keys that are absent
// leave the matching field untouched.
func (f *Form) BindForm(values url.Values) {
	if id := values.Get(FormIDField); id != "" {
		f.id = id
	}
	for _, field := range f.Fields() {
		if vs, ok := values[string(field)]; ok && len(vs) > 0 {
			f.Set(field, vs[0])
		}
	}
}

// ClearFields is an on-success hook that resets every field.
func ClearFields(f *Form) {
	for field := range f.values {
		delete(f.values, field)
	}
}
