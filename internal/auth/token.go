package auth

//go:generate mockgen -destination=mock/mock_token_source.go -package=mockauth -source=token.go

import (
	"context"
	"strings"

	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// SpreadsheetsScope is the OAuth scope needed to write the character sheet
const SpreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// Token is an OAuth access token
type Token struct {
	Type        string
	AccessToken string
}

// Header renders the Authorization header value
func (t *Token) Header() string {
	tokenType := t.Type
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + t.AccessToken
}

// TokenSource obtains a token for a user and scope
type TokenSource interface {
	Token(ctx context.Context, ownerID, scope string) (*Token, error)
}

type staticTokenSource struct {
	token  string
	scopes []string
}

// NewStaticTokenSource hands out one preconfigured token for the given scopes
func NewStaticTokenSource(token string, scopes ...string) TokenSource {
	if len(scopes) == 0 {
		scopes = []string{SpreadsheetsScope}
	}
	return &staticTokenSource{
		token:  strings.TrimSpace(token),
		scopes: scopes,
	}
}

func (s *staticTokenSource) Token(ctx context.Context, ownerID, scope string) (*Token, error) {
	if s.token == "" {
		return nil, dnderr.New(dnderr.CodeUnauthenticated, "spreadsheet login is not configured")
	}

	for _, allowed := range s.scopes {
		if allowed == scope {
			return &Token{Type: "Bearer", AccessToken: s.token}, nil
		}
	}
	return nil, dnderr.Newf(dnderr.CodeUnauthenticated, "scope %s was not granted", scope)
}
