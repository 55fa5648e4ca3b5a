package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the validated classification verdict for one chat. Field values
// are whatever the model produced; only the shape is enforced.
type Result struct {
	Resolved  string     `json:"resolved"`
	Sentiment string     `json:"sentiment"`
	Analysis  string     `json:"analysis"`
	Keywords  StringList `json:"keywords"`
}

// StringList accepts either a JSON array of strings or a single scalar
// string — the model returns both shapes for the keywords key.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		if scalar == "" {
			*l = nil
		} else {
			*l = StringList{scalar}
		}
		return nil
	}
	return fmt.Errorf("keywords: neither string list nor scalar: %s", string(data))
}

// String is the display form used in the report: elements joined by ", ".
func (l StringList) String() string {
	return strings.Join(l, ", ")
}

// ParseError marks a completion whose body did not honor the JSON output
// contract. Callers skip the affected chat and keep the run going; there is
// no retry for semantic failures.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed classification response: %s", e.Reason)
}
