// Package app wires the portal's services together in a samber/do injector.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/lateslip-portal/internal/audit"
	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/nfrund/lateslip-portal/internal/backend"
	"github.com/nfrund/lateslip-portal/internal/config"
	"github.com/nfrund/lateslip-portal/internal/handlers"
	"github.com/nfrund/lateslip-portal/internal/pages"
	"github.com/nfrund/lateslip-portal/internal/pubsub"
	"github.com/nfrund/lateslip-portal/internal/server"
	"github.com/samber/do/v2"
)

// NewInjector registers every service of the portal. Nothing is built until
// it is first invoked.
func NewInjector(cfg *config.Config) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, newBackendClient)
	do.Provide(i, newBus)
	do.Provide(i, newAuditSink)
	do.Provide(i, newControllers)
	do.Provide(i, newGuard)
	do.Provide(i, newAuthHandler)
	do.Provide(i, newDashboardHandler)
	do.Provide(i, newServer)

	return i
}

func newBackendClient(i do.Injector) (*backend.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	client, err := backend.New(cfg.BackendOrigin)
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	return client, nil
}

func newBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func newAuditSink(i do.Injector) (audit.Sink, error) {
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	return audit.NewPublisher(bus), nil
}

func newControllers(i do.Injector) (pages.Controllers, error) {
	client := do.MustInvoke[*backend.Client](i)
	sink := do.MustInvoke[audit.Sink](i)
	return pages.Controllers{
		Login:        pages.NewLogin(client, pages.WithAudit(sink)),
		Registration: pages.NewRegistration(client, pages.WithAudit(sink)),
	}, nil
}

func newGuard(i do.Injector) (*authform.Guard, error) {
	cfg := do.MustInvoke[*config.Config](i)
	policy, err := authform.ParseGuardPolicy(cfg.SubmitGuard)
	if err != nil {
		return nil, err
	}
	return authform.NewGuard(policy), nil
}

func newAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	validation, err := authform.PolicyByName(cfg.FormValidation)
	if err != nil {
		return nil, err
	}
	return handlers.NewAuthHandler(
		do.MustInvoke[pages.Controllers](i),
		do.MustInvoke[*authform.Guard](i),
		validation,
		cfg.ClearOnSuccess,
	), nil
}

func newDashboardHandler(i do.Injector) (*handlers.DashboardHandler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return handlers.NewDashboardHandler(cfg.DashboardURL), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	return server.New(
		do.MustInvoke[*config.Config](i),
		do.MustInvoke[*handlers.AuthHandler](i),
		do.MustInvoke[*handlers.DashboardHandler](i),
	), nil
}

// StartAudit subscribes the audit log to the bus. It must run before the
// first request, since the bus drops messages nobody listens for.
func StartAudit(ctx context.Context, i do.Injector) error {
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return err
	}
	return audit.Subscribe(ctx, bus, slog.Default().With("component", "audit"))
}

// Run starts the audit subscriber and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, i do.Injector) error {
	if err := StartAudit(ctx, i); err != nil {
		return fmt.Errorf("start audit log: %w", err)
	}

	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	defer func() {
		bus := do.MustInvoke[*pubsub.WatermillBridge](i)
		if err := bus.Close(); err != nil {
			slog.Error("Failed to close bus", "error", err)
		}
	}()

	return srv.Start(ctx)
}
