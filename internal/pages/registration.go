package pages

import (
	"context"
	"log/slog"

	"github.com/nfrund/lateslip-portal/internal/audit"
	"github.com/nfrund/lateslip-portal/internal/domain"
)

// Registration is the controller behind the sign-up form.
type Registration struct {
	client RegistrationClient
	opts   options
}

// NewRegistration creates the registration controller.
func NewRegistration(client RegistrationClient, opts ...Option) *Registration {
	return &Registration{client: client, opts: buildOptions(opts)}
}

// Submit creates an admin account and sends the user to the login page. No
// token is issued at sign-up. It reports whether the registration succeeded.
func (p *Registration) Submit(ctx context.Context, fx Effects, username, email, password string) bool {
	_, err := p.client.SubmitRegistration(ctx, username, email, password)
	if ctx.Err() != nil {
		slog.DebugContext(ctx, "Registration abandoned", "email", email, "error", ctx.Err())
		return false
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed registration attempt", "email", email, "error", err)
		p.opts.sink.Record(ctx, audit.Event{Mode: "registration", Email: email, Outcome: audit.OutcomeFailed, Reason: err.Error()})
		fx.Notify.Failure(MsgRegistrationFailed)
		return false
	}

	slog.InfoContext(ctx, "Admin registered", "email", email)
	p.opts.sink.Record(ctx, audit.Event{Mode: "registration", Email: email, Outcome: audit.OutcomeSucceeded})
	fx.Notify.Success(MsgRegistrationSucceeded)
	fx.Navigate.Navigate(domain.PathLogin)
	return true
}
