// Package navstate decides whether a client should jump back to the route it
// last visited.
package navstate

import "strings"

const (
	RootPath = "/"
	AuthPath = "/auth"

	maxPathLen = 2048
)

// Restore returns the route to navigate to when the client lands on landing
// with saved as its last visited route. Only the root and login routes are
// redirected, and never to the login route itself or to where the client
// already is.
func Restore(landing, saved string) (string, bool) {
	if saved == "" {
		return "", false
	}
	if landing != RootPath && landing != AuthPath {
		return "", false
	}
	if saved == landing || saved == AuthPath {
		return "", false
	}
	return saved, true
}

// ValidPath reports whether path may be stored as a last visited route:
// an absolute in-app path with optional query.
func ValidPath(path string) bool {
	if path == "" || len(path) > maxPathLen {
		return false
	}
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return false
	}
	return !strings.ContainsAny(path, "\r\n")
}
