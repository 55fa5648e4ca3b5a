package pipeline

import (
	"strings"
	"sync"
	"time"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/report"
)

// Run states reported by the status endpoint.
const (
	StateRunning   = "running"
	StateCompleted = "completed"
)

// Progress holds the live counters of one run. Written by the single
// pipeline goroutine, read concurrently by the status server.
type Progress struct {
	mu        sync.Mutex
	state     string
	startedAt time.Time
	summary   report.Summary
}

// Status is the JSON payload served by the status endpoint.
type Status struct {
	State     string    `json:"state"`
	StartedAt time.Time `json:"started_at"`
	report.Summary
}

func NewProgress(runID string) *Progress {
	return &Progress{
		state:     StateRunning,
		startedAt: time.Now().UTC(),
		summary: report.Summary{
			RunID:      runID,
			Sentiments: make(map[string]int),
		},
	}
}

func (p *Progress) SetChatsFetched(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary.ChatsFetched = n
}

func (p *Progress) ChatProcessed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary.ChatsProcessed++
}

// RowWritten records one accumulated row and tallies its sentiment.
func (p *Progress) RowWritten(sentiment string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary.RowsWritten++
	key := strings.ToLower(strings.TrimSpace(sentiment))
	if key == "" {
		key = "unknown"
	}
	p.summary.Sentiments[key]++
}

func (p *Progress) SkippedEmpty() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary.SkippedEmpty++
}

func (p *Progress) SkippedUnparseable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary.SkippedUnparseable++
}

func (p *Progress) Failed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary.Failed++
}

// Complete marks the run finished and returns the final summary.
func (p *Progress) Complete() report.Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateCompleted
	return p.snapshotSummary()
}

// Snapshot returns a copy of the current state for the status endpoint.
func (p *Progress) Snapshot() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{
		State:     p.state,
		StartedAt: p.startedAt,
		Summary:   p.snapshotSummary(),
	}
}

// snapshotSummary copies the summary so callers never share the live map.
// Callers must hold p.mu.
func (p *Progress) snapshotSummary() report.Summary {
	s := p.summary
	s.Sentiments = make(map[string]int, len(p.summary.Sentiments))
	for k, v := range p.summary.Sentiments {
		s.Sentiments[k] = v
	}
	return s
}
