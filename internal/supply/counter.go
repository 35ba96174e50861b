package supply

import (
	"math"
	"sync"

	"github.com/feral-file/ff-mint-engine/internal/domain"
)

// Counter is the monotonic issuance sequence generator with a hard ceiling.
// Token numbers start at 1 and are assigned consecutively; a reservation
// either advances the whole batch or leaves the counter untouched.
type Counter struct {
	mu     sync.Mutex
	issued uint64
	cap    uint64
}

// NewCounter creates a counter seeded with an already-issued count.
// Seeding from the committed registry count keeps restarts from ever
// re-assigning a token number.
func NewCounter(supplyCap, issued uint64) (*Counter, error) {
	if issued > supplyCap {
		return nil, domain.ErrSupplyExceeded
	}
	return &Counter{issued: issued, cap: supplyCap}, nil
}

// Reserve atomically checks and advances the issued count by quantity.
// It returns the first newly assigned token number; subsequent numbers in
// the batch are consecutive. On failure no state change is observable.
func (c *Counter) Reserve(quantity uint64) (uint64, error) {
	if quantity == 0 {
		return 0, domain.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity > math.MaxUint64-c.issued || c.issued+quantity > c.cap {
		return 0, domain.ErrSupplyExceeded
	}

	start := c.issued + 1
	c.issued += quantity
	return start, nil
}

// Rollback returns a reservation, restoring the issued count to exactly its
// pre-reservation value. It never releases more than was issued.
func (c *Counter) Rollback(quantity uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity > c.issued {
		quantity = c.issued
	}
	c.issued -= quantity
}

// Issued returns the committed issuance count
func (c *Counter) Issued() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issued
}

// Cap returns the fixed supply ceiling
func (c *Counter) Cap() uint64 {
	return c.cap
}

// Remaining returns how many tokens can still be issued
func (c *Counter) Remaining() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cap - c.issued
}
