// Package pages holds the page controllers behind the login and sign-up
// forms. A controller calls the backend and turns the outcome into user
// effects: a toast, a stored token, a navigation. Backend errors stop here.
package pages

import (
	"context"

	"github.com/nfrund/lateslip-portal/internal/audit"
	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/nfrund/lateslip-portal/internal/backend"
	"github.com/nfrund/lateslip-portal/internal/effects"
	"github.com/nfrund/lateslip-portal/internal/tokenstore"
)

// User-facing notification texts.
const (
	MsgLoginSucceeded        = "User logged in successfully"
	MsgLoginFailed           = "Invalid Email or password!"
	MsgRegistrationSucceeded = "User Registered in successfully"
	MsgRegistrationFailed    = "Failed SignUp. User already exists!"
	MsgMissingFields         = "Please fill in all fields"
	MsgSubmitInFlight        = "Your previous request is still being processed."
	MsgSessionFailed         = "Could not save your session. Please try again."
)

// LoginClient is the backend call the login page makes.
type LoginClient interface {
	SubmitLogin(ctx context.Context, email, password string) (*backend.LoginResponse, error)
}

// RegistrationClient is the backend call the registration page makes.
type RegistrationClient interface {
	SubmitRegistration(ctx context.Context, username, email, password string) (*backend.RegistrationResponse, error)
}

// Effects is what a controller may touch while handling one submit.
type Effects struct {
	Tokens   tokenstore.Store
	Notify   effects.Notifier
	Navigate effects.Navigator
}

// Option configures a controller.
type Option func(*options)

type options struct {
	sink audit.Sink
}

// WithAudit sends an event for every attempt to sink.
func WithAudit(sink audit.Sink) Option {
	return func(o *options) { o.sink = sink }
}

func buildOptions(opts []Option) options {
	o := options{sink: audit.Discard{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Controllers pairs the two pages so a tagged submission can be routed.
type Controllers struct {
	Login        *Login
	Registration *Registration
}

// Dispatch hands s to the page for its mode and reports whether it succeeded.
func (c Controllers) Dispatch(ctx context.Context, fx Effects, s authform.Submission) bool {
	switch s := s.(type) {
	case authform.LoginSubmission:
		return c.Login.Submit(ctx, fx, s.Email, s.Password)
	case authform.RegistrationSubmission:
		return c.Registration.Submit(ctx, fx, s.Username, s.Email, s.Password)
	default:
		return false
	}
}
