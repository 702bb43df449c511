package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryIntOrDefault reads an integer query parameter, silently falling back to
// the default when the value is missing, non-numeric, or not positive. List
// endpoints coerce bad paging input instead of rejecting the request.
func QueryIntOrDefault(r *http.Request, key string, defaultVal int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultVal
	}
	return value
}

// QueryString reads a trimmed string query parameter.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
