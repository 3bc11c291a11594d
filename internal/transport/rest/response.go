// Package rest serves the JSON API consumed by popup and CLI clients.
// Every response carries a status tag so clients can branch without
// inspecting HTTP status codes.
package rest

import (
	"encoding/json"
	"net/http"
)

const (
	statusSuccess    = "success"
	statusError      = "error"
	statusNoLanguage = "noLanguage"
)

type successResponse struct {
	Status     string `json:"status"`
	Data       any    `json:"data"`
	TTSEnabled *bool  `json:"ttsEnabled,omitempty"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: statusError, Message: message})
}
