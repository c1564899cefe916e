package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// EmbeddingCache memoizes query-text -> embedding vectors so repeated
// identical searches skip one round-trip to the embedding service. Only
// the vector is cached; retrieval and generation always run, so answers
// are never served from cache.
type EmbeddingCache struct {
	cache *cache.Cache
}

func NewEmbeddingCache() *EmbeddingCache {
	// Expire after 5 minutes, purge every 10
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &EmbeddingCache{
		cache: c,
	}
}

func (r *EmbeddingCache) Save(queryText string, vector []float32) {
	r.cache.Set(queryText, vector, cache.DefaultExpiration)
}

func (r *EmbeddingCache) Get(queryText string) ([]float32, bool) {
	if x, found := r.cache.Get(queryText); found {
		return x.([]float32), true
	}
	return nil, false
}
