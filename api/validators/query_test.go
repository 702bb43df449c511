package validators

import (
	"net/http/httptest"
	"testing"
)

func TestQueryIntOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"missing", "", 10},
		{"valid", "page=3", 3},
		{"non numeric", "page=abc", 10},
		{"zero", "page=0", 10},
		{"negative", "page=-2", 10},
		{"float", "page=1.5", 10},
		{"padded", "page=%202%20", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)
			if got := QueryIntOrDefault(r, "page", 10); got != tt.want {
				t.Fatalf("QueryIntOrDefault(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestQueryString(t *testing.T) {
	r := httptest.NewRequest("GET", "/?search=%20john%20", nil)
	if got := QueryString(r, "search"); got != "john" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := QueryString(r, "missing"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}
