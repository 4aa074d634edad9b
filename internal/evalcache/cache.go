// Package evalcache memoises engine evaluations. The engine is pure, so an
// identical request evaluated within the same clock hour yields the same
// result and can be served from memory.
package evalcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/couchcryptid/surf-forecast-engine/internal/observability"
)

// Evaluator produces an evaluation for a decoded request.
type Evaluator interface {
	Evaluate(req domain.EvaluationRequest) domain.Evaluation
}

// CachedEvaluator wraps an Evaluator with an in-memory LRU cache.
type CachedEvaluator struct {
	inner   Evaluator
	cache   *lruCache
	now     func() time.Time
	metrics *observability.Metrics
}

// New creates a cache decorator around an evaluator. A nil clock follows
// domain.Now, the same source the engine evaluates against, so hour keys and
// "today" roll over together. metrics may be nil.
func New(inner Evaluator, maxEntries int, clk clockwork.Clock, metrics *observability.Metrics) *CachedEvaluator {
	now := domain.Now
	if clk != nil {
		now = clk.Now
	}
	return &CachedEvaluator{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		now:     now,
		metrics: metrics,
	}
}

// Evaluate returns a cached evaluation for the request when one exists for
// the current hour, otherwise evaluates and stores the result.
func (c *CachedEvaluator) Evaluate(req domain.EvaluationRequest) domain.Evaluation {
	key, ok := cacheKey(req, c.now())
	if !ok {
		return c.inner.Evaluate(req)
	}
	if eval, hit := c.cache.get(key); hit {
		c.observe("hit")
		return eval
	}
	c.observe("miss")
	eval := c.inner.Evaluate(req)
	c.cache.put(key, eval)
	return eval
}

// Len reports the number of cached evaluations.
func (c *CachedEvaluator) Len() int {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	return len(c.cache.entries)
}

func (c *CachedEvaluator) observe(result string) {
	if c.metrics != nil {
		c.metrics.EvalCache.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the request together with the UTC hour it is evaluated in.
// Requests that cannot be marshalled are never cached.
func cacheKey(req domain.EvaluationRequest, now time.Time) (string, bool) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	h := sha256.New()
	h.Write(data)
	h.Write([]byte(now.UTC().Truncate(time.Hour).Format(time.RFC3339)))
	return hex.EncodeToString(h.Sum(nil)), true
}

// lruCache is a simple thread-safe LRU cache for evaluations.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.Evaluation
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.Evaluation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Evaluation{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Evaluation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
