package store

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDs generates message serials. Serials are ULIDs: they embed the
// millisecond they were created and sort in creation order, even when
// several are created within the same millisecond.
type IDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDs creates a generator drawing randomness from r. A nil reader uses
// crypto/rand.
func NewIDs(r io.Reader) *IDs {
	if r == nil {
		r = rand.Reader
	}
	return &IDs{entropy: ulid.Monotonic(r, 0)}
}

// Next returns a new serial stamped with now.
func (g *IDs) Next(now time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(now), g.entropy)
	if err != nil {
		return "", fmt.Errorf("generating message id: %w", err)
	}
	return id.String(), nil
}
