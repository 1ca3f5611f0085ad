package apiclient

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// APIError carries a non-2xx response. Fields holds the server's field-keyed
// validation messages when the payload had that shape.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if msg := e.Flatten(); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Flatten collapses field-keyed messages into one display string for the
// status banner, e.g. "name: This field is required. code: Too long.".
func (e *APIError) Flatten() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return strings.Join(parts, " ")
}

// parseAPIError reads a failure body. DRF-style payloads are an object of
// field -> list of messages; everything else becomes a plain message.
func parseAPIError(status int, body []byte) *APIError {
	out := &APIError{StatusCode: status}
	if len(body) == 0 {
		return out
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		out.Message = strings.TrimSpace(string(body))
		return out
	}

	fields := map[string][]string{}
	for key, val := range raw {
		var list []string
		if err := json.Unmarshal(val, &list); err == nil {
			fields[key] = list
			continue
		}
		var single string
		if err := json.Unmarshal(val, &single); err == nil {
			if key == "error" || key == "detail" || key == "message" {
				out.Message = single
			} else {
				fields[key] = []string{single}
			}
		}
	}
	if len(fields) > 0 {
		out.Fields = fields
	}
	return out
}
