// Package httpapi holds the JSON response conventions shared by controllers.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorEnvelope standardizes JSON error responses.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// WantsJSON reports whether the client accepts a JSON response.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Accept")), "application/json")
}

// RequestID returns the request id assigned by the logging middleware,
// falling back to the one sent by the client.
func RequestID(w http.ResponseWriter, r *http.Request) string {
	if w != nil {
		if id := strings.TrimSpace(w.Header().Get("X-Request-Id")); id != "" {
			return id
		}
	}
	if r != nil {
		return strings.TrimSpace(r.Header.Get("X-Request-Id"))
	}
	return ""
}

// RouteMeta describes the failed request in error envelopes.
func RouteMeta(w http.ResponseWriter, r *http.Request) map[string]string {
	meta := map[string]string{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if id := RequestID(w, r); id != "" {
		meta["request_id"] = id
	}
	return meta
}
