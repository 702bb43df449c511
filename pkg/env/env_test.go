package env

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("CARDLINK_TEST_VALUE", "console")
	if got := Get("CARDLINK_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected console, got %q", got)
	}

	t.Setenv("CARDLINK_TEST_VALUE", "  console  ")
	if got := Get("CARDLINK_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected trimmed value, got %q", got)
	}

	t.Setenv("CARDLINK_TEST_VALUE", "   ")
	if got := Get("CARDLINK_TEST_VALUE", "json"); got != "json" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}

	if got := Get("CARDLINK_TEST_MISSING", "json"); got != "json" {
		t.Fatalf("expected fallback for unset key, got %q", got)
	}
}
