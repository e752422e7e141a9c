package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// errorResponse is the canonical error envelope returned by the API.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	code := strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func trimValidationMessage(err error) string {
	message := err.Error()
	if idx := strings.Index(message, ":"); idx >= 0 {
		message = strings.TrimSpace(message[idx+1:])
	}
	return message
}
