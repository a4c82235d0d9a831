package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// CatalogCache builds and shares per-seed catalogs. Sessions only carry a
// seed; the catalog itself is rebuilt deterministically on demand, which
// keeps session payloads small and gives every reader the same immutable
// value.
type CatalogCache struct {
	mu      sync.RWMutex
	endDate time.Time
	loc     *time.Location
	entries map[string]*Catalog
}

func NewCatalogCache(endDate time.Time, loc *time.Location) *CatalogCache {
	return &CatalogCache{
		endDate: endDate,
		loc:     loc,
		entries: make(map[string]*Catalog),
	}
}

func (cc *CatalogCache) EndDate() time.Time {
	return cc.endDate
}

func (cc *CatalogCache) Location() *time.Location {
	return cc.loc
}

// Get returns the catalog for seed, generating it on first use. Entries are
// keyed by generation day as well, since "today" bounds the date range.
func (cc *CatalogCache) Get(seed int64, now time.Time) *Catalog {
	today := now.In(cc.loc)
	key := catalogKey(seed, today)

	cc.mu.RLock()
	c, ok := cc.entries[key]
	cc.mu.RUnlock()
	if ok {
		return c
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	if c, ok := cc.entries[key]; ok {
		return c
	}

	// entries from previous days can never be requested again
	daySuffix := ":" + today.Format(DateLayout)
	for k := range cc.entries {
		if !strings.HasSuffix(k, daySuffix) {
			delete(cc.entries, k)
		}
	}

	c = GenerateCatalog(today, cc.endDate, rand.New(rand.NewSource(seed)))
	cc.entries[key] = c
	return c
}

func catalogKey(seed int64, today time.Time) string {
	return fmt.Sprintf("%d:%s", seed, today.Format(DateLayout))
}
