package google

import (
	"golang.org/x/oauth2"
)

// NewTokenSource wraps a caller-supplied access token.
// The token is never refreshed; an expired token surfaces as ErrUnauthorized.
func NewTokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}
