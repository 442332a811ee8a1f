package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCacheTTL = 5 * time.Minute

// readCache fronts Fetch with a short-TTL snapshot per (table, filter set).
// Every successful write to a table drops all of that table's entries, so a
// fetch inside the TTL window still sees the write.
type readCache struct {
	entries *gocache.Cache
}

func newReadCache(ttl time.Duration) *readCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &readCache{entries: gocache.New(ttl, 2*ttl)}
}

func (cache *readCache) get(key string) ([]Row, bool) {
	value, found := cache.entries.Get(key)
	if !found {
		return nil, false
	}
	rows, ok := value.([]Row)
	return rows, ok
}

func (cache *readCache) put(key string, rows []Row) {
	cache.entries.SetDefault(key, rows)
}

func (cache *readCache) invalidate(table string) {
	prefix := table + "|"
	for key := range cache.entries.Items() {
		if strings.HasPrefix(key, prefix) {
			cache.entries.Delete(key)
		}
	}
}

// cacheKey is deterministic per filter set: keys sorted, values rendered.
func cacheKey(table string, filters map[string]any) string {
	if len(filters) == 0 {
		return table + "|*"
	}
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString(table)
	builder.WriteString("|")
	for index, key := range keys {
		if index > 0 {
			builder.WriteString("&")
		}
		fmt.Fprintf(&builder, "%s=%v", key, filters[key])
	}
	return builder.String()
}
