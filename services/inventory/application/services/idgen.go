package services

import (
	"sync"
	"time"
)

// IDGenerator issues identifiers for store-authored custom items. The only
// contract is uniqueness at creation time; the scheme is an implementation
// detail. Tests inject a fixed generator.
type IDGenerator interface {
	NextID() int64
}

// timestampIDs issues millisecond-timestamp identifiers, bumping
// monotonically when two items are created within the same millisecond.
type timestampIDs struct {
	mu   sync.Mutex
	last int64
}

// NewTimestampIDGenerator returns the default IDGenerator.
func NewTimestampIDGenerator() IDGenerator {
	return &timestampIDs{}
}

func (g *timestampIDs) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
