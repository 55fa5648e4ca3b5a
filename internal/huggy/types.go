package huggy

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SenderTypeVirtualAgent marks messages authored by Huggy's automated agent.
// Any other value is treated as a human (customer or attendant).
const SenderTypeVirtualAgent = "virtual_agent"

// ID is a Huggy object identifier. The API serves ids as numbers on some
// resources and as strings on others, so both wire shapes are accepted.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", s)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// sendAtLayouts are the timestamp formats observed on message send_at values.
var sendAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Timestamp is a message timestamp. Absent or unparseable values decode to
// the zero time, which sorts before every real timestamp.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range sendAtLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

// Chat is one support conversation. The lifecycle timestamps are passed
// through to the report verbatim, so they stay strings.
type Chat struct {
	ID         ID     `json:"id"`
	CreatedAt  string `json:"createdAt"`
	AttendedAt string `json:"attendedAt"`
	ClosedAt   string `json:"closedAt"`
}

// Sender identifies who authored a message.
type Sender struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Customer is the snapshot Huggy embeds in each message.
type Customer struct {
	ID           ID             `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Mobile       string         `json:"mobile"`
	CustomFields map[string]any `json:"custom_fields"`
}

// Field returns the named custom field rendered as a string, or "" when the
// customer or the field is absent.
func (c *Customer) Field(name string) string {
	if c == nil || c.CustomFields == nil {
		return ""
	}
	v, ok := c.CustomFields[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Message is one turn within a chat.
type Message struct {
	Body       string    `json:"body"`
	SendAt     Timestamp `json:"send_at"`
	Sender     *Sender   `json:"sender"`
	SenderType string    `json:"senderType"`
	Customer   *Customer `json:"customer"`
}
