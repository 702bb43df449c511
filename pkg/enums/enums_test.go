package enums

import "testing"

func TestAccountStatus(t *testing.T) {
	if !AccountStatusActive.IsValid() || !AccountStatusDisabled.IsValid() {
		t.Fatalf("expected canonical statuses to be valid")
	}
	for _, raw := range []string{"", "active", "MAYBE", "ARCHIVED"} {
		if AccountStatus(raw).IsValid() {
			t.Fatalf("expected %q to be invalid", raw)
		}
		if _, err := ParseAccountStatus(raw); err == nil {
			t.Fatalf("expected parse of %q to fail", raw)
		}
	}
	parsed, err := ParseAccountStatus("DISABLED")
	if err != nil || parsed != AccountStatusDisabled {
		t.Fatalf("parse DISABLED: %v %v", parsed, err)
	}
}

func TestAdminRole(t *testing.T) {
	if !AdminRoleAdmin.IsValid() || !AdminRoleSuperAdmin.IsValid() {
		t.Fatalf("expected canonical roles to be valid")
	}
	if AdminRole("ROOT").IsValid() {
		t.Fatalf("expected ROOT to be invalid")
	}
	parsed, err := ParseAdminRole("SUPER_ADMIN")
	if err != nil || parsed != AdminRoleSuperAdmin {
		t.Fatalf("parse SUPER_ADMIN: %v %v", parsed, err)
	}
}

func TestPublicTheme(t *testing.T) {
	for _, theme := range []PublicTheme{PublicThemeDarkMinimal, PublicThemeLightGlass, PublicThemeClassicBlue} {
		if !theme.IsValid() {
			t.Fatalf("expected %s to be valid", theme)
		}
	}
	if PublicTheme("NEON").IsValid() {
		t.Fatalf("expected NEON to be invalid")
	}
	parsed, err := ParsePublicTheme("LIGHT_GLASS")
	if err != nil || parsed != PublicThemeLightGlass {
		t.Fatalf("parse LIGHT_GLASS: %v %v", parsed, err)
	}
}
