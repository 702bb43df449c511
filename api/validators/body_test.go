package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
)

type samplePayload struct {
	FullName string `json:"full_name" validate:"required"`
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
}

func decodeSample(t *testing.T, body string) (samplePayload, error) {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	return dest, err
}

func TestDecodeJSONBodyValid(t *testing.T) {
	dest, err := decodeSample(t, `{"full_name":"John Doe","username":"john-doe","email":"john@example.com"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dest.Username != "john-doe" {
		t.Fatalf("unexpected username %q", dest.Username)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	_, err := decodeSample(t, `{"full_name":"John","username":"john","email":"j@e.com","password_hash":"sneaky"}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	_, err := decodeSample(t, `{"full_name":`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for malformed body, got %v", err)
	}
}

func TestDecodeJSONBodyUsernameAcceptsMixedCase(t *testing.T) {
	// Case is canonicalized by the services, not rejected at the wire.
	for _, username := range []string{"JOHN-DOE", "John-Doe", " john-doe "} {
		dest, err := decodeSample(t, `{"full_name":"John","username":"`+username+`","email":"j@e.com"}`)
		if err != nil {
			t.Fatalf("username %q: expected decode to pass, got %v", username, err)
		}
		if dest.Username != username {
			t.Fatalf("username %q: decode must not rewrite the raw value, got %q", username, dest.Username)
		}
	}
}

func TestDecodeJSONBodyUsernameRule(t *testing.T) {
	for _, username := range []string{"john_doe", "john doe", "john!"} {
		_, err := decodeSample(t, `{"full_name":"John","username":"`+username+`","email":"j@e.com"}`)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("username %q: expected validation error, got %v", username, err)
		}
		details, ok := typed.Details().(map[string]string)
		if !ok {
			t.Fatalf("username %q: expected field details, got %T", username, typed.Details())
		}
		if details["username"] == "" {
			t.Fatalf("username %q: expected username field message, got %v", username, details)
		}
	}
}

func TestDecodeJSONBodyRequiredFields(t *testing.T) {
	_, err := decodeSample(t, `{}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || len(details) != 3 {
		t.Fatalf("expected three field errors, got %v", typed.Details())
	}
}
