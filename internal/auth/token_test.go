package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

func TestStaticTokenSource(t *testing.T) {
	ctx := context.Background()

	token, err := auth.NewStaticTokenSource(" abc ").Token(ctx, "user-1", auth.SpreadsheetsScope)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", token.Header())

	_, err = auth.NewStaticTokenSource("abc").Token(ctx, "user-1", "https://www.googleapis.com/auth/drive")
	assert.True(t, dnderr.Is(err, dnderr.CodeUnauthenticated))

	_, err = auth.NewStaticTokenSource("").Token(ctx, "user-1", auth.SpreadsheetsScope)
	assert.True(t, dnderr.Is(err, dnderr.CodeUnauthenticated))
}

func TestTokenHeaderDefaultsToBearer(t *testing.T) {
	assert.Equal(t, "Bearer xyz", (&auth.Token{AccessToken: "xyz"}).Header())
	assert.Equal(t, "MAC xyz", (&auth.Token{Type: "MAC", AccessToken: "xyz"}).Header())
}
