package pages

import (
	"context"
	"log/slog"

	"github.com/nfrund/lateslip-portal/internal/audit"
	"github.com/nfrund/lateslip-portal/internal/domain"
)

// Login is the controller behind the login form.
type Login struct {
	client LoginClient
	opts   options
}

// NewLogin creates the login controller.
func NewLogin(client LoginClient, opts ...Option) *Login {
	return &Login{client: client, opts: buildOptions(opts)}
}

// Submit logs the user in. On success the token is stored, a success toast
// is shown and the user is sent to the dashboard. On any failure a single
// failure toast is shown and nothing else happens. It reports whether the
// login succeeded.
func (p *Login) Submit(ctx context.Context, fx Effects, email, password string) bool {
	resp, err := p.client.SubmitLogin(ctx, email, password)
	if ctx.Err() != nil {
		// The user went away; there is no page left to update.
		slog.DebugContext(ctx, "Login abandoned", "email", email, "error", ctx.Err())
		return false
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed login attempt", "email", email, "error", err)
		p.opts.sink.Record(ctx, audit.Event{Mode: "login", Email: email, Outcome: audit.OutcomeFailed, Reason: err.Error()})
		fx.Notify.Failure(MsgLoginFailed)
		return false
	}

	if err := fx.Tokens.Set(ctx, resp.Token); err != nil {
		slog.ErrorContext(ctx, "Failed to store session token", "email", email, "error", err)
		p.opts.sink.Record(ctx, audit.Event{Mode: "login", Email: email, Outcome: audit.OutcomeFailed, Reason: err.Error()})
		fx.Notify.Failure(MsgSessionFailed)
		return false
	}

	slog.InfoContext(ctx, "User logged in", "email", email)
	p.opts.sink.Record(ctx, audit.Event{Mode: "login", Email: email, Outcome: audit.OutcomeSucceeded})
	fx.Notify.Success(MsgLoginSucceeded)
	fx.Navigate.Navigate(domain.PathAdminDashboard)
	return true
}
