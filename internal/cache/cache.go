package cache

import (
	"sync"
	"time"

	"github.com/vistaarbengaluru/vistaar/internal/models"
)

// Cache holds the admin inbox reads between writes. Entries expire after ttl
// and are dropped whenever a new inquiry is stored.
//
// Readers take Generation before querying and pass it to the setter; a result
// read across an Invalidate is discarded instead of cached.
type Cache struct {
	mu           sync.RWMutex
	gen          uint64
	inquiries    []models.Inquiry
	inquiriesExp time.Time
	stats        *models.InboxStats
	statsExp     time.Time
	ttl          time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

func (c *Cache) GetInquiries() ([]models.Inquiry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.inquiries == nil || time.Now().After(c.inquiriesExp) {
		return nil, false
	}
	return c.inquiries, true
}

// SetInquiries reports whether the list was stored.
func (c *Cache) SetInquiries(gen uint64, inquiries []models.Inquiry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	c.inquiries = inquiries
	c.inquiriesExp = time.Now().Add(c.ttl)
	return true
}

func (c *Cache) GetStats() (*models.InboxStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stats == nil || time.Now().After(c.statsExp) {
		return nil, false
	}
	return c.stats, true
}

func (c *Cache) SetStats(gen uint64, s models.InboxStats) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	c.stats = &s
	c.statsExp = time.Now().Add(c.ttl)
	return true
}

// Invalidate drops every entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.inquiries = nil
	c.stats = nil
}
