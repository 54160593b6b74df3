package localid

import (
	"strings"

	"github.com/google/uuid"
)

// Prefix marks identities minted by this process while the remote backend
// was unreachable. Backend-assigned ids are plain UUIDs, so the two
// namespaces can never collide.
const Prefix = "local-"

// New generates a fallback identity for an entity created offline.
func New() string {
	return Prefix + uuid.New().String()
}

// IsLocal reports whether id was minted by this process rather than
// assigned by the backend.
func IsLocal(id string) bool {
	return strings.HasPrefix(id, Prefix)
}
