package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// DisplayName returns a human-readable name embedded in the token, if the
// token happens to be a JWT. The signature is NOT checked: the value is only
// used for a greeting and never for an access decision.
func DisplayName(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	if name, ok := claims["name"].(string); ok && name != "" {
		return name
	}
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}
