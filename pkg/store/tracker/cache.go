package tracker

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache holds GET responses keyed by endpoint so repeated lookups within one
// run (activities are fetched alongside every entry query) cost a single API
// call. Injected into the client rather than hidden inside it, so tests and
// callers that want fresh data can supply their own or none.
type Cache interface {
	Get(endpoint string) ([]byte, bool)
	Set(endpoint string, body []byte)
	Flush()
}

type memoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache returns an in-memory Cache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration) Cache {
	return &memoryCache{cache: gocache.New(ttl, 2*ttl)}
}

func (m *memoryCache) Get(endpoint string) ([]byte, bool) {
	value, ok := m.cache.Get(endpoint)
	if !ok {
		return nil, false
	}
	body, ok := value.([]byte)
	return body, ok
}

func (m *memoryCache) Set(endpoint string, body []byte) {
	m.cache.SetDefault(endpoint, body)
}

func (m *memoryCache) Flush() {
	m.cache.Flush()
}
