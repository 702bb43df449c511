package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of the environment variable, or the fallback
// when it is unset or blank. Whitespace-only values count as unset so a stray
// `LOG_FORMAT=" "` in a .env file does not mask the default.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
