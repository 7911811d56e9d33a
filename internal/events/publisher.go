// Package events publishes build notifications to NATS when a server is
// configured. Sites without events.nats_url never touch this package.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// BuildCompleted is the JSON payload emitted after every build.
type BuildCompleted struct {
	BuildID      string    `json:"build_id"`
	Outcome      string    `json:"outcome"`
	Pages        int       `json:"pages"`
	ManifestHash string    `json:"manifest_hash"`
	DurationMS   int64     `json:"duration_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher wraps a NATS connection for build events.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to NATS. The connection is non-blocking on
// publish; a dead server surfaces on Flush.
func NewPublisher(url, subject string) (*Publisher, error) {
	if url == "" {
		return nil, fmt.Errorf("nats url is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("event subject is required")
	}

	conn, err := nats.Connect(url, nats.Name("blogsmith"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	slog.Info("Build event publisher connected", "url", url, "subject", subject)
	return &Publisher{conn: conn, subject: subject}, nil
}

// PublishBuildCompleted emits a build-completed event.
func (p *Publisher) PublishBuildCompleted(ev BuildCompleted) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal build event: %w", err)
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish build event: %w", err)
	}
	return p.conn.Flush()
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}
