// Package transcript turns a chat's raw message list into the plain-text
// rendering consumed by the classifier.
package transcript

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/huggy"
)

// Role labels attached to transcript lines. They are part of the classifier
// prompt contract and stay in Portuguese.
const (
	RoleCustomer = "cliente"
	RoleBot      = "bot"
	RoleAgent    = "atendente"
)

// Line is one role-attributed message of a normalized transcript.
type Line struct {
	Role string
	Text string
}

// Normalize orders messages by send timestamp (stable on ties), drops
// messages whose body is empty unless they came from the virtual agent, and
// attributes a role to each survivor.
func Normalize(msgs []huggy.Message) []Line {
	ordered := make([]huggy.Message, len(msgs))
	copy(ordered, msgs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SendAt.Before(ordered[j].SendAt.Time)
	})

	kept := lo.Filter(ordered, func(m huggy.Message, _ int) bool {
		return m.Body != "" || m.SenderType == huggy.SenderTypeVirtualAgent
	})

	return lo.Map(kept, func(m huggy.Message, _ int) Line {
		return Line{Role: roleFor(m), Text: m.Body}
	})
}

// roleFor resolves the speaker label: the customer when sender and embedded
// customer ids match, the bot for virtual-agent messages, the human
// attendant otherwise.
func roleFor(m huggy.Message) string {
	switch {
	case m.Sender != nil && m.Customer != nil && m.Sender.ID == m.Customer.ID:
		return RoleCustomer
	case m.SenderType == huggy.SenderTypeVirtualAgent:
		return RoleBot
	default:
		return RoleAgent
	}
}

// Render produces the classifier input: two lines per surviving message,
// messages joined by a single newline. Zero messages render to "".
func Render(msgs []huggy.Message) string {
	lines := lo.Map(Normalize(msgs), func(l Line, _ int) string {
		return fmt.Sprintf("enviado por: %s\nmensagem: %s", l.Role, l.Text)
	})
	return strings.Join(lines, "\n")
}
