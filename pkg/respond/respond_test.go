package respond

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 400, "Invalid JSON payload.")

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Invalid JSON payload." {
		t.Fatalf("error = %q", body["error"])
	}
	if _, ok := body["code"]; ok {
		t.Fatal("code should be omitted when empty")
	}
}

func TestErrorCode(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorCode(rec, 502, "Failed to identify impact factors.", "ai_provider_error")

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != "ai_provider_error" {
		t.Fatalf("code = %q", body["code"])
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, 404, "No logs found")

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "No logs found" {
		t.Fatalf("message = %q", body["message"])
	}
}
