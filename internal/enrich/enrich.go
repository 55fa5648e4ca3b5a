// Package enrich derives customer identity and the attending human agent
// from a chat's message list.
package enrich

import (
	"strings"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/huggy"
)

// DefaultAgentName is the sentinel used when no human agent spoke in a chat.
const DefaultAgentName = "Não identificado"

// Result carries the identity fields resolved from one chat.
type Result struct {
	Customer *huggy.Customer
	Agent    string
}

// Resolve scans messages in arrival order. Each embedded customer snapshot
// replaces the previous one until the first human agent is identified, which
// ends the scan. The agent is the first sender whose id differs from the
// message's customer id and whose display name does not contain botMarker;
// later agents in a transferred chat are not captured.
func Resolve(msgs []huggy.Message, botMarker string) Result {
	res := Result{Agent: DefaultAgentName}

	for _, m := range msgs {
		if m.Customer != nil {
			res.Customer = m.Customer
		}

		if m.Sender == nil {
			continue
		}
		if m.Customer != nil && m.Sender.ID == m.Customer.ID {
			continue
		}
		if botMarker != "" && strings.Contains(m.Sender.Name, botMarker) {
			continue
		}

		res.Agent = m.Sender.Name
		break
	}

	return res
}
