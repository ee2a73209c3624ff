package tts

import (
	"container/list"
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheCapacity bounds the synthesis cache. Cached audio for a chat
// reply runs tens of kilobytes, so the cache tops out at a few megabytes.
const DefaultCacheCapacity = 128

// Cache is a capacity-bounded LRU cache of synthesized audio keyed by the
// exact input text. Safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
}

type cacheEntry struct {
	text  string
	audio []byte
}

// NewCache creates a cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the cached audio for text, refreshing its recency.
func (c *Cache) Get(text string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[text]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).audio, true
}

// Put stores audio under text, evicting the least-recently-used entry when
// the cache is full. An existing key is overwritten and its recency refreshed.
func (c *Cache) Put(text string, audio []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[text]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).audio = audio
		return
	}

	el := c.order.PushFront(&cacheEntry{text: text, audio: audio})
	c.entries[text] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).text)
		}
	}
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CachedClient wraps a Client with the LRU cache. A miss triggers one
// underlying call whose result is stored before being returned; concurrent
// misses for the same text are collapsed into a single provider call.
type CachedClient struct {
	client Client
	cache  *Cache
	group  singleflight.Group
}

// NewCachedClient wraps client with cache.
func NewCachedClient(client Client, cache *Cache) *CachedClient {
	return &CachedClient{client: client, cache: cache}
}

// Synthesize returns cached audio for text, calling the underlying client
// on a miss.
func (c *CachedClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if audio, ok := c.cache.Get(text); ok {
		return audio, nil
	}

	v, err, _ := c.group.Do(text, func() (any, error) {
		audio, err := c.client.Synthesize(ctx, text)
		if err != nil {
			return nil, err
		}
		if len(audio) > 0 {
			c.cache.Put(text, audio)
		}
		return audio, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
