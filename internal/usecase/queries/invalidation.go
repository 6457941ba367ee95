package queries

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"tablebook/internal/pkg/civil"
	"tablebook/internal/pkg/clock"
)

// InvalidationSource delivers the availability-changed signals published at
// commit time. The payload is the affected service date; delivery runs until
// ctx is cancelled.
type InvalidationSource interface {
	Subscribe(ctx context.Context, fn func(dateISO string)) error
}

const freeTablesTTL = 30 * time.Second

type freeTablesEntry struct {
	tables  []TableView
	expires time.Time
}

// FreeTableCache memoizes free-table listings between invalidation signals.
// Correctness never depends on it: the commit path recomputes occupancy and
// the exclusion constraint has the final word, so a lost signal only means a
// stale listing until the TTL lapses.
type FreeTableCache struct {
	mu      sync.Mutex
	clk     clock.Clock
	entries map[string]freeTablesEntry
}

func NewFreeTableCache(clk clock.Clock) *FreeTableCache {
	return &FreeTableCache{
		clk:     clk,
		entries: make(map[string]freeTablesEntry),
	}
}

// InvalidateDate drops every cached listing the date could affect. A late
// booking can spill past midnight, so the following day's listings go too.
func (c *FreeTableCache) InvalidateDate(dateISO string) {
	stale := map[string]struct{}{dateISO: {}}
	if d, err := time.Parse(civil.DateLayout, dateISO); err == nil {
		stale[d.AddDate(0, 0, 1).Format(civil.DateLayout)] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		date, _, _ := strings.Cut(key, "|")
		if _, hit := stale[date]; hit {
			delete(c.entries, key)
		}
	}
}

func (c *FreeTableCache) get(key string) ([]TableView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.clk.Now().After(e.expires) {
		return nil, false
	}
	return e.tables, true
}

func (c *FreeTableCache) put(key string, tables []TableView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = freeTablesEntry{
		tables:  tables,
		expires: c.clk.Now().Add(freeTablesTTL),
	}
}

func freeTablesKey(dateISO, timeHHMM string, partySize int) string {
	return dateISO + "|" + timeHHMM + "|" + strconv.Itoa(partySize)
}
