package distfield

import (
	"sync"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Cache memoises fields by target for one grid and region. Fields are
// immutable, so a cached field may be handed to any number of agents.
// Cache is safe for concurrent use.
type Cache struct {
	grid   *gridgraph.Grid
	region gridgraph.Region

	mu     sync.Mutex
	fields map[gridgraph.Point]*Field
	hits   int
	misses int
}

// NewCache returns an empty cache bound to g and region.
func NewCache(g *gridgraph.Grid, region gridgraph.Region) *Cache {
	return &Cache{
		grid:   g,
		region: region,
		fields: make(map[gridgraph.Point]*Field),
	}
}

// Get returns the field of target, building it on first use.
// Concurrent first requests for one target may each build it; the first
// stored result wins and the values are identical either way.
func (c *Cache) Get(target gridgraph.Point) (*Field, error) {
	c.mu.Lock()
	if f, ok := c.fields[target]; ok {
		c.hits++
		c.mu.Unlock()
		return f, nil
	}
	c.misses++
	c.mu.Unlock()

	f, err := Build(c.grid, target, c.region)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.fields[target]; ok {
		return prev, nil
	}
	c.fields[target] = f
	return f, nil
}

// Len returns the number of cached fields.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fields)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Reset drops every cached field and zeroes the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = make(map[gridgraph.Point]*Field)
	c.hits, c.misses = 0, 0
}
