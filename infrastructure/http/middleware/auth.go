package middleware

import (
	"net/http"
	"strings"

	"github.com/dynasim/dynasim/infrastructure/http/response"
)

// AuthMiddleware validates the Dynatrace token scheme:
//
//	Authorization: Api-Token {token}
//
// against a fixed set of accepted tokens. Tokens are opaque strings; there
// is no expiry and no claims.
type AuthMiddleware struct {
	tokens map[string]struct{}
}

func NewAuthMiddleware(apiTokens []string) *AuthMiddleware {
	tokens := make(map[string]struct{}, len(apiTokens))
	for _, t := range apiTokens {
		tokens[t] = struct{}{}
	}
	return &AuthMiddleware{tokens: tokens}
}

// RequireAPIToken rejects requests without a valid Api-Token header. The
// three failure modes get distinct messages so client misconfiguration is
// easy to diagnose from the response alone.
func (m *AuthMiddleware) RequireAPIToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing Authorization header. Expected format: 'Api-Token {token}'")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Api-Token" {
			response.Unauthorized(w, "Invalid Authorization header format. Expected format: 'Api-Token {token}'")
			return
		}

		if _, ok := m.tokens[parts[1]]; !ok {
			response.Unauthorized(w, "Invalid API token")
			return
		}

		next.ServeHTTP(w, r)
	}
}
