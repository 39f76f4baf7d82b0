package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"
)

// LRU is an in-process cache with TTL and size-based eviction.
type LRU struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List

	// counters are neither evicted nor expired
	counters map[string]int64

	// now is replaced in tests
	now func() time.Time
}

type lruItem struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewLRU creates a new LRU cache holding at most maxSize values for ttl each.
func NewLRU(maxSize int, ttl time.Duration) *LRU {
	return &LRU{
		maxSize: maxSize,
		ttl:     ttl,
		items:    make(map[string]*list.Element),
		lru:      list.New(),
		counters: make(map[string]int64),
		now:      time.Now,
	}
}

func (c *LRU) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		return nil, false, nil
	}

	item := elem.Value.(*lruItem)
	if c.now().After(item.expiresAt) {
		c.removeElement(elem)
		return nil, false, nil
	}

	// Move to front (most recently used)
	c.lru.MoveToFront(elem)
	return item.data, true, nil
}

func (c *LRU) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := &lruItem{
		key:       key,
		data:      value,
		expiresAt: c.now().Add(c.ttl),
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return nil
	}

	elem := c.lru.PushFront(item)
	c.items[key] = elem

	// Evict if over capacity
	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	return nil
}

func (c *LRU) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, elem := range c.items {
		if strings.HasPrefix(key, prefix) {
			c.removeElement(elem)
		}
	}

	return nil
}

func (c *LRU) Generation(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[key], nil
}

func (c *LRU) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[key]++
	return c.counters[key], nil
}

// Size returns the current number of items in the cache
func (c *LRU) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LRU) removeElement(elem *list.Element) {
	item := elem.Value.(*lruItem)
	delete(c.items, item.key)
	c.lru.Remove(elem)
}
