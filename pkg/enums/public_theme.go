package enums

import "fmt"

// PublicTheme names the presentation variant a card renders with.
// The values are rendering-only and opaque to the API.
type PublicTheme string

const (
	PublicThemeDarkMinimal PublicTheme = "DARK_MINIMAL"
	PublicThemeLightGlass  PublicTheme = "LIGHT_GLASS"
	PublicThemeClassicBlue PublicTheme = "CLASSIC_BLUE"
)

var validPublicThemes = []PublicTheme{
	PublicThemeDarkMinimal,
	PublicThemeLightGlass,
	PublicThemeClassicBlue,
}

// String implements fmt.Stringer.
func (t PublicTheme) String() string {
	return string(t)
}

// IsValid reports whether the value is a known PublicTheme.
func (t PublicTheme) IsValid() bool {
	for _, candidate := range validPublicThemes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParsePublicTheme converts raw input into a PublicTheme.
func ParsePublicTheme(value string) (PublicTheme, error) {
	for _, candidate := range validPublicThemes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid public theme %q", value)
}
