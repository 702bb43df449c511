package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteSuccessIsBarePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"username": "john-doe"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := decodeBody(t, rec)
	if body["username"] != "john-doe" {
		t.Fatalf("expected bare payload, got %v", body)
	}
	if _, wrapped := body["data"]; wrapped {
		t.Fatalf("payload must not be wrapped in an envelope")
	}
}

func TestWriteErrorTypedMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"conflict", pkgerrors.New(pkgerrors.CodeConflict, "Username already exists"), http.StatusConflict, "Username already exists"},
		{"not found", pkgerrors.New(pkgerrors.CodeNotFound, "Profile not found"), http.StatusNotFound, "Profile not found"},
		{"unauthorized", pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{"validation", pkgerrors.New(pkgerrors.CodeValidation, "Invalid status value"), http.StatusBadRequest, "Invalid status value"},
		{"forbidden", pkgerrors.New(pkgerrors.CodeForbidden, "Insufficient role"), http.StatusForbidden, "Insufficient role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tt.err)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["message"] != tt.message {
				t.Fatalf("expected message %q, got %v", tt.message, body["message"])
			}
		})
	}
}

func TestWriteErrorMasksInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: connection reset"), "query failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Internal server error" {
		t.Fatalf("expected generic message, got %v", body["message"])
	}
	if _, leaked := body["details"]; leaked {
		t.Fatalf("internal errors must not leak details")
	}
}

func TestWriteErrorMasksDependencyCause(t *testing.T) {
	// Store failures surface as a generic 500, same as internal errors.
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("dial tcp: connection refused"), "lookup profile"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Internal server error" {
		t.Fatalf("expected generic message, got %v", body["message"])
	}
	if _, leaked := body["details"]; leaked {
		t.Fatalf("dependency errors must not leak details")
	}
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Internal server error" {
		t.Fatalf("expected generic message, got %v", body["message"])
	}
}

func TestWriteErrorValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "Unable to create profile").WithDetails("username is required")
	WriteError(context.Background(), nil, rec, err)

	body := decodeBody(t, rec)
	if body["details"] != "username is required" {
		t.Fatalf("expected details passthrough, got %v", body["details"])
	}
}
