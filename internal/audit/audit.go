// Package audit records the outcome of every login and sign-up attempt on the
// in-process bus and writes them to the log.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/lateslip-portal/internal/pubsub"
)

// Outcome is the result of an attempt.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// Event describes one attempt. It never carries the password or the token.
type Event struct {
	Mode    string    `json:"mode"`
	Email   string    `json:"email,omitempty"`
	Outcome Outcome   `json:"outcome"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}

// Topic returns the bus topic for a mode and outcome, e.g. "auth.login.failed".
func Topic(mode string, outcome Outcome) string {
	return fmt.Sprintf("auth.%s.%s", mode, outcome)
}

// Topics lists every topic events are published on.
func Topics() []string {
	var topics []string
	for _, mode := range []string{"login", "registration"} {
		for _, outcome := range []Outcome{OutcomeSucceeded, OutcomeFailed} {
			topics = append(topics, Topic(mode, outcome))
		}
	}
	return topics
}

// Sink receives events from the page controllers.
type Sink interface {
	Record(ctx context.Context, ev Event)
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Record(context.Context, Event) {}

// Publisher is a Sink that publishes events on the bus.
type Publisher struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewPublisher creates a Publisher on pub.
func NewPublisher(pub pubsub.Publisher) *Publisher {
	return &Publisher{pub: pub, now: time.Now}
}

// Record publishes ev. Failures are logged and never reach the user.
func (p *Publisher) Record(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = p.now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode audit event", "error", err)
		return
	}
	msg := pubsub.Message{Topic: Topic(ev.Mode, ev.Outcome), Payload: payload}
	if err := p.pub.Publish(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish audit event", "topic", msg.Topic, "error", err)
	}
}

// Subscribe logs every event published on the audit topics until ctx ends.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	for _, topic := range Topics() {
		if err := sub.Subscribe(ctx, topic, logHandler(logger)); err != nil {
			return fmt.Errorf("subscribe to %s: %w", topic, err)
		}
	}
	return nil
}

func logHandler(logger *slog.Logger) pubsub.Handler {
	return func(ctx context.Context, msg pubsub.Message) error {
		var ev Event
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return fmt.Errorf("decode audit event: %w", err)
		}
		level := slog.LevelInfo
		if ev.Outcome == OutcomeFailed {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "Auth attempt",
			"topic", msg.Topic,
			"mode", ev.Mode,
			"email", ev.Email,
			"outcome", ev.Outcome,
			"reason", ev.Reason,
			"at", ev.At,
		)
		return nil
	}
}
