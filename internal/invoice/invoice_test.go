package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_NewToken(t *testing.T) {
	gen := UUIDGenerator{}

	token := gen.NewToken()
	assert.True(t, strings.HasPrefix(token, "INV-"))
	assert.Len(t, token, 4+32)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := gen.NewToken()
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}
