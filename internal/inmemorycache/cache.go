package inmemorycache

import (
	"sync"
	"time"
)

type cacheEntry struct {
	locationID uint
	expiration time.Time
}

// Cache maps a stadium city to its location row id.
type Cache interface {
	Get(city string) (uint, bool)
	Set(city string, locationID uint, ttl time.Duration)
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache) Get(city string) (uint, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[city]
	if !exists {
		return 0, false
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, city)
		return 0, false
	}

	return entry.locationID, true
}

func (m *InMemoryCache) Set(city string, locationID uint, ttl time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[city] = cacheEntry{
		locationID: locationID,
		expiration: time.Now().Add(ttl),
	}
}

func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (m *InMemoryCache) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
