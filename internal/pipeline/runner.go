// Package pipeline orchestrates the ingestion-and-analysis run: chats are
// fetched page by page, each chat's messages are normalized, classified and
// enriched, and the accumulated rows are flushed exactly once at the end.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/classifier"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/enrich"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/huggy"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/report"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/transcript"
)

// ChatSource provides paginated access to chats and their messages.
type ChatSource interface {
	FetchChats(ctx context.Context) ([]huggy.Chat, error)
	FetchMessages(ctx context.Context, chatID huggy.ID) ([]huggy.Message, error)
}

// Classifier produces a verdict for one rendered transcript.
type Classifier interface {
	Classify(ctx context.Context, transcript string) (*classifier.Result, error)
}

// Notifier publishes run lifecycle events. Optional.
type Notifier interface {
	RunCompleted(ctx context.Context, summary report.Summary) error
}

// Config carries the runner tunables.
type Config struct {
	// ChatPause is the fixed pause before each chat's message fetch.
	ChatPause time.Duration
	// BotNameMarker excludes platform bot accounts from agent detection.
	BotNameMarker string
}

// Runner drives one complete pipeline pass.
type Runner struct {
	source     ChatSource
	classifier Classifier
	sinks      []report.Sink
	notifier   Notifier
	progress   *Progress
	cfg        Config
	logger     *slog.Logger
}

func NewRunner(source ChatSource, cls Classifier, sinks []report.Sink, notifier Notifier, progress *Progress, cfg Config, logger *slog.Logger) *Runner {
	return &Runner{
		source:     source,
		classifier: cls,
		sinks:      sinks,
		notifier:   notifier,
		progress:   progress,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run executes the pipeline and returns the final summary. Whatever rows
// accumulated are flushed exactly once, even when the chat loop aborts or
// the context is cancelled mid-run.
func (r *Runner) Run(ctx context.Context) report.Summary {
	col := newCollector()
	flushCtx := context.WithoutCancel(ctx)

	func() {
		defer r.flush(flushCtx, col)
		r.runLoop(ctx, col)
	}()

	summary := r.progress.Complete()

	if r.notifier != nil {
		if err := r.notifier.RunCompleted(flushCtx, summary); err != nil {
			r.logger.Warn("run-completed event not published", "error", err)
		}
	}

	return summary
}

func (r *Runner) runLoop(ctx context.Context, col *collector) {
	chats, err := r.source.FetchChats(ctx)
	if err != nil {
		r.logger.Error("chat listing failed, flushing accumulated rows", "error", err)
		return
	}
	r.progress.SetChatsFetched(len(chats))
	r.logger.Info("chats fetched", "count", len(chats))

	for _, chat := range chats {
		if err := huggy.Sleep(ctx, r.cfg.ChatPause); err != nil {
			r.logger.Warn("run interrupted", "error", err)
			return
		}

		if err := r.processChat(ctx, chat, col); err != nil {
			if ctx.Err() != nil {
				r.logger.Warn("run interrupted", "error", ctx.Err())
				return
			}
			// One chat's failure never aborts the rest of the run.
			r.progress.Failed()
			r.logger.Error("chat failed, skipping", "chat_id", chat.ID, "error", err)
		}
		r.progress.ChatProcessed()
	}
}

func (r *Runner) processChat(ctx context.Context, chat huggy.Chat, col *collector) error {
	msgs, err := r.source.FetchMessages(ctx, chat.ID)
	if err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}
	if len(msgs) == 0 {
		r.progress.SkippedEmpty()
		r.logger.Debug("chat has no messages, skipping", "chat_id", chat.ID)
		return nil
	}

	enriched := enrich.Resolve(msgs, r.cfg.BotNameMarker)
	text := transcript.Render(msgs)

	verdict, err := r.classifier.Classify(ctx, text)
	if err != nil {
		var parseErr *classifier.ParseError
		if errors.As(err, &parseErr) {
			r.progress.SkippedUnparseable()
			r.logger.Error("unparseable classification, skipping chat", "chat_id", chat.ID, "error", err)
			return nil
		}
		return fmt.Errorf("classify: %w", err)
	}

	col.append(report.Assemble(chat, enriched, verdict))
	r.progress.RowWritten(verdict.Sentiment)
	r.logger.Info("chat analyzed",
		"chat_id", chat.ID,
		"agent", enriched.Agent,
		"sentiment", verdict.Sentiment,
		"resolved", verdict.Resolved,
	)
	return nil
}

// flush hands the complete row set to every sink. Sink errors are logged,
// never fatal: a degraded run still reports whatever it has.
func (r *Runner) flush(ctx context.Context, col *collector) {
	for _, sink := range r.sinks {
		if err := sink.Write(ctx, col.rows); err != nil {
			r.logger.Error("sink flush failed", "error", err)
		}
	}
}
