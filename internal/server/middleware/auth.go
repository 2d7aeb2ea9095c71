// Package middleware provides the route guard for protected admin views.
package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// TokenValidator validates the bearer token carried by admin requests.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// SessionChecker is the server-side session guard consulted on every
// protected request. Check may log the session out as a side effect when it
// has expired.
type SessionChecker interface {
	Check() bool
	Extend() // treat the request as operator activity
}

// LoginPath is where unauthenticated browser navigation is redirected. The
// originally requested location is preserved in the "from" query parameter
// so a successful login can return there.
const LoginPath = "/admin/login"

// Protect gates a handler behind both the bearer token and the session
// guard. Every allowed request extends the session, so an active operator
// never expires mid-task.
func Protect(tokens TokenValidator, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bearerValid(tokens, r) || !sessions.Check() {
				deny(w, r)
				return
			}

			sessions.Extend()
			next.ServeHTTP(w, r)
		})
	}
}

func bearerValid(tokens TokenValidator, r *http.Request) bool {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return false
	}

	// Case-insensitive "Bearer" prefix.
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return false
	}

	return tokens.ValidateToken(tokenString) == nil
}

// deny redirects browser navigation to the login view with the requested
// location preserved; API clients get a plain 401.
func deny(w http.ResponseWriter, r *http.Request) {
	if isNavigation(r) {
		target := LoginPath + "?from=" + url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, target, http.StatusFound)
		return
	}
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

func isNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
