// pkg/mem/search_cache.go
package mem

import (
	"sync"
	"time"

	"tripwise/internal/models/response_models"
)

type HotelSearchCache interface {
	Set(key string, result *response_models.HotelSearchResult, ttl time.Duration)

	// Get returns the cached result for key if not expired.
	Get(key string) (*response_models.HotelSearchResult, bool)
}

type cacheEntry struct {
	result    *response_models.HotelSearchResult
	expiresAt time.Time
}

type SearchCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
}

func NewSearchCache() *SearchCache {
	return &SearchCache{
		data: make(map[string]cacheEntry),
	}
}

func (s *SearchCache) Set(key string, result *response_models.HotelSearchResult, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cacheEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *SearchCache) Get(key string) (*response_models.HotelSearchResult, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.result, true
}
