// Package validate checks route and query inputs before they reach a
// service. Form bodies are validated separately in internal/forms.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSort = regexp.MustCompile(`^(lowest|highest|alphabetical)$`)
)

// ID validates a resource identifier (product/cart-item ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Sort normalizes a sort query value. Anything unrecognized becomes the
// empty string, which selects the newest-first default downstream.
func Sort(s string) string {
	s = strings.TrimSpace(s)
	if reSort.MatchString(s) {
		return s
	}
	return ""
}

// Qty parses a quantity, clamped to [1,50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}
