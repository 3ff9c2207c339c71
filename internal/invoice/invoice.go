// Package invoice generates the unique tokens that identify placed orders.
package invoice

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces unique invoice tokens. Collision resistance is the
// generator's responsibility; implementations should carry at least 80
// bits of entropy.
type Generator interface {
	NewToken() string
}

// UUIDGenerator issues tokens from random UUIDs (122 bits of entropy).
type UUIDGenerator struct{}

// NewToken returns a fresh invoice token such as
// "INV-6f1c2a9e8b3d4c7fa1e2d3c4b5a69788".
func (UUIDGenerator) NewToken() string {
	return "INV-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
