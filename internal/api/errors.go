package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/moyn-dev/moyn-cli/internal/services"
)

const maxErrorBody = 200

// Error describes a non-2xx response from the blogging service. It unwraps to
// one of the services markers (ErrUnauthorized, ErrNotFound, ErrValidation,
// ErrServer) so callers can classify it with errors.Is.
type Error struct {
	Operation  string
	StatusCode int
	Message    string
	marker     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Operation != "" {
		b.WriteString(e.Operation)
		b.WriteString(": ")
	}
	b.WriteString(e.marker.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	return b.String()
}

func (e *Error) Unwrap() error { return e.marker }

func newStatusError(operation string, status int, body []byte) *Error {
	return &Error{
		Operation:  operation,
		StatusCode: status,
		Message:    errorMessage(body),
		marker:     markerForStatus(status),
	}
}

func markerForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return services.ErrUnauthorized
	case http.StatusNotFound:
		return services.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return services.ErrValidation
	default:
		return services.ErrServer
	}
}

type errorPayload struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// errorMessage extracts a human readable message from an error response body.
// It understands {"error": "..."}, {"message": "..."}, {"errors": [...]} and
// {"errors": {"field": ["..."]}}, falling back to the trimmed raw body.
func errorMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		if msg := flattenErrors(payload.Errors); msg != "" {
			return msg
		}
	}
	if utf8.RuneCountInString(raw) > maxErrorBody {
		raw = text.Trim(raw, maxErrorBody) + "..."
	}
	return raw
}

func flattenErrors(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for _, key := range sortedKeys(fields) {
			parts = append(parts, fmt.Sprintf("%s %s", key, strings.Join(fields[key], ", ")))
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
