package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Summary aggregates the end-of-run counters. It is printed to the console
// and published on the run-completed event.
type Summary struct {
	RunID              string         `json:"run_id"`
	ChatsFetched       int            `json:"chats_fetched"`
	ChatsProcessed     int            `json:"chats_processed"`
	RowsWritten        int            `json:"rows_written"`
	SkippedEmpty       int            `json:"skipped_empty"`
	SkippedUnparseable int            `json:"skipped_unparseable"`
	Failed             int            `json:"failed"`
	Sentiments         map[string]int `json:"sentiments"`
}

// Print renders the summary as a console table.
func (s Summary) Print(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"chats fetched", strconv.Itoa(s.ChatsFetched)})
	table.Append([]string{"chats processed", strconv.Itoa(s.ChatsProcessed)})
	table.Append([]string{"rows written", strconv.Itoa(s.RowsWritten)})
	table.Append([]string{"skipped (no messages)", strconv.Itoa(s.SkippedEmpty)})
	table.Append([]string{"skipped (unparseable)", strconv.Itoa(s.SkippedUnparseable)})
	table.Append([]string{"failed", strconv.Itoa(s.Failed)})

	sentiments := make([]string, 0, len(s.Sentiments))
	for k := range s.Sentiments {
		sentiments = append(sentiments, k)
	}
	sort.Strings(sentiments)
	for _, k := range sentiments {
		table.Append([]string{"sentiment: " + k, strconv.Itoa(s.Sentiments[k])})
	}

	table.Render()
}
