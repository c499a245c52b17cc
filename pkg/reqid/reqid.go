// Package reqid generates request correlation IDs. Account keys in this
// system are numeric database ids; ULIDs are used only where a sortable,
// collision-free opaque identifier is handy, i.e. tracing requests through
// logs.
package reqid

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a lexicographically sortable ULID string using the current UTC
// time and a shared monotonic entropy source. Safe for concurrent use.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
