package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type stubRateStore struct {
	counts map[string]int64
	keys   []string
}

func (s *stubRateStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.counts == nil {
		s.counts = make(map[string]int64)
	}
	s.counts[key]++
	s.keys = append(s.keys, key)
	return s.counts[key], nil
}

func loginRequest(email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"`+email+`","password":"secret"}`))
	req.RemoteAddr = "203.0.113.7:51234"
	return req
}

func TestAuthRateLimitBlocksAfterIPLimit(t *testing.T) {
	store := &stubRateStore{}
	policy := NewAuthRateLimitPolicy("login", time.Minute, 2, 0)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthRateLimit(policy, store, nil)(next)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, loginRequest("admin@demo.com"))
		if resp.Code != http.StatusNoContent {
			t.Fatalf("attempt %d: expected 204 got %d", i+1, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, loginRequest("admin@demo.com"))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", resp.Code)
	}
	if msg := errorMessage(t, resp); msg != "Too many attempts, try again later" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthRateLimitHashesEmailKeys(t *testing.T) {
	store := &stubRateStore{}
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 1)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthRateLimit(policy, store, nil)(next)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, loginRequest("Admin@Demo.com"))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, loginRequest("  admin@demo.com "))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for normalized email, got %d", resp.Code)
	}

	for _, key := range store.keys {
		if strings.Contains(key, "admin@demo.com") {
			t.Fatalf("raw email leaked into store key %q", key)
		}
	}
	if len(store.keys) != 2 || store.keys[0] != store.keys[1] {
		t.Fatalf("expected both attempts to share one hashed key, got %v", store.keys)
	}
}

func TestAuthRateLimitDisabledPassesThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	handler := AuthRateLimit(NewAuthRateLimitPolicy("login", 0, 5, 5), &stubRateStore{}, nil)(next)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, loginRequest("admin@demo.com"))
	if !called || resp.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through with zero window, got %d", resp.Code)
	}

	called = false
	handler = AuthRateLimit(NewAuthRateLimitPolicy("login", time.Minute, 5, 5), nil, nil)(next)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, loginRequest("admin@demo.com"))
	if !called || resp.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through with nil store, got %d", resp.Code)
	}
}
