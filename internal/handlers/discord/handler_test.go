package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnsCustomID(t *testing.T) {
	assert.True(t, ownsCustomID("chargen:next:abc"))
	assert.False(t, ownsCustomID("chargenx:next:abc"))
	assert.False(t, ownsCustomID("character_create:race_select"))
	assert.False(t, ownsCustomID(""))
}
