package pipeline

import "github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/report"

// collector owns the in-memory row set for one run. Append-only, written by
// the single runner goroutine, handed to the sinks exactly once at flush.
type collector struct {
	rows []report.Row
}

func newCollector() *collector {
	return &collector{}
}

func (c *collector) append(r report.Row) {
	c.rows = append(c.rows, r)
}
