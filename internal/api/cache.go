package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/portvet/portvet/pkg/portability"
)

// ReportCache is a thread-safe LRU cache for loaded assessment reports.
type ReportCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*cacheEntry
	order   []string // oldest first
}

type cacheEntry struct {
	result *portability.Result
}

// NewReportCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 50.
func NewReportCache(maxSize int) *ReportCache {
	if maxSize <= 0 {
		maxSize = 50
	}
	return &ReportCache{
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
	}
}

// NewReportCacheFromEnv creates a cache with size from REPORT_CACHE_SIZE env var.
func NewReportCacheFromEnv() *ReportCache {
	size := 50
	if v := os.Getenv("REPORT_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewReportCache(size)
}

// Get retrieves a report from the cache, or nil if not found.
func (c *ReportCache) Get(id string) *portability.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return entry.result
}

// Put adds a report to the cache, evicting the oldest if full.
func (c *ReportCache) Put(id string, result *portability.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; ok {
		c.entries[id] = &cacheEntry{result: result}
		c.moveToEnd(id)
		return
	}

	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = &cacheEntry{result: result}
	c.order = append(c.order, id)
}

func (c *ReportCache) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
