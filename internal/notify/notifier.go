// Package notify publishes run lifecycle events over NATS. It is wired only
// when NATS_URL is set.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/report"
)

// SubjectRunCompleted carries the final summary of each export run.
const SubjectRunCompleted = "huggy.sentiment.run.completed"

type Notifier struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func New(url, token string, logger *slog.Logger) (*Notifier, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Notifier{conn: nc, logger: logger}, nil
}

func (n *Notifier) Close() {
	n.conn.Drain()
}

// RunCompleted publishes the end-of-run summary.
func (n *Notifier) RunCompleted(_ context.Context, summary report.Summary) error {
	payload, err := json.Marshal(struct {
		CompletedAt string `json:"completed_at"`
		report.Summary
	}{
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:     summary,
	})
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := n.conn.Publish(SubjectRunCompleted, payload); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectRunCompleted, err)
	}
	return n.conn.Flush()
}
