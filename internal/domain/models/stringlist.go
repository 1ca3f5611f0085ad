package models

import (
	"encoding/json"
	"strings"
)

// StringList is an ordered list of strings stored on the wire as a single
// ", "-joined string (documents_required, photography_required, services).
// Items containing a comma do not round-trip; the wire format has no escaping.
type StringList []string

// SplitList parses a ", "-joined wire value into a StringList.
func SplitList(raw string) StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StringList{}
	}
	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Join flattens the list back to the wire format.
func (l StringList) Join() string {
	return strings.Join(l, ", ")
}

func (l StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Join())
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	// accept both a joined string and a plain array
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = SplitList(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}
