package translate

import (
	"sync"
	"time"

	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// languageCache holds the provider's language catalog for a fixed TTL.
type languageCache struct {
	fetchedAt time.Time
	languages *api.AvailableLanguages
	ttl       time.Duration
	mu        sync.RWMutex
}

func newLanguageCache(ttl time.Duration) *languageCache {
	return &languageCache{ttl: ttl}
}

func (c *languageCache) get() (*api.AvailableLanguages, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.languages == nil || time.Since(c.fetchedAt) > c.ttl {
		return nil, false
	}
	return c.languages, true
}

func (c *languageCache) set(languages *api.AvailableLanguages) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.languages = languages
	c.fetchedAt = time.Now()
}
