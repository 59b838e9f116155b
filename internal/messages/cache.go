package messages

import (
	"sync"
	"time"
)

// DefaultTTL is how long a generated message stays valid.
const DefaultTTL = 24 * time.Hour

type cacheEntry struct {
	message  Message
	storedAt time.Time
}

// Cache is a key-value store for rendered messages with lazy TTL eviction.
// Entries are immutable once written; a racing double-fill is harmless and
// the last writer wins.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache constructs a Cache. A zero ttl falls back to DefaultTTL; a nil
// clock falls back to time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns a non-expired entry. Expired entries are deleted and reported
// as a miss.
func (c *Cache) Get(key string) (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return Message{}, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return Message{}, false
	}
	return entry.message, true
}

// Put stores the message under key with the current timestamp.
func (c *Cache) Put(key string, msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{message: msg, storedAt: c.now()}
}

// Len returns the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
