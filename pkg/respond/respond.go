// Package respond writes the API's JSON response shapes.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the {"error": ...} shape returned for client and
// provider failures. Code carries an optional machine-readable code.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageBody is the {"message": ...} shape used for 404s.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes an {"error": ...} body.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// ErrorCode writes an {"error": ..., "code": ...} body.
func ErrorCode(w http.ResponseWriter, status int, message, code string) {
	JSON(w, status, ErrorBody{Error: message, Code: code})
}

// Message writes a {"message": ...} body.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessageBody{Message: message})
}
