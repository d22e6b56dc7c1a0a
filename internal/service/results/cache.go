package results

import (
	"context"
	"sync"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
)

// Cache holds the fetched seats collection between requests. It is populated
// on first access, patched in place after successful writes, and invalidated
// on explicit refresh or after a failed write so the next read reconciles
// against the store. The composition root owns the one instance and hands it
// to the services that need it.
type Cache struct {
	repo seat.SeatRepository

	mu     sync.Mutex
	seats  map[string]seat.Seat
	loaded bool
}

func NewCache(repo seat.SeatRepository) *Cache {
	return &Cache{repo: repo}
}

// Snapshot returns the live seat documents, fetching the whole collection if
// the cache is cold.
func (c *Cache) Snapshot(ctx context.Context) ([]seat.Seat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		fetched, err := c.repo.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		c.seats = make(map[string]seat.Seat, len(fetched))
		for _, s := range fetched {
			c.seats[s.SeatNo] = s
		}
		c.loaded = true
	}

	snapshot := make([]seat.Seat, 0, len(c.seats))
	for _, s := range c.seats {
		snapshot = append(snapshot, s)
	}
	return snapshot, nil
}

// Put patches one seat into a warm cache. A cold cache is left cold; the next
// Snapshot fetches everything anyway.
func (c *Cache) Put(s seat.Seat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		c.seats[s.SeatNo] = s
	}
}

// Invalidate throws the cached collection away.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seats = nil
	c.loaded = false
}
