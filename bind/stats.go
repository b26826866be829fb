package bind

import "sort"

// CacheStats holds aggregate resolution statistics for one cache.
type CacheStats struct {
	Records    int     // Published resolutions
	Hits       uint64  // Lookups served from a published record
	Misses     uint64  // Lookups that had to resolve
	Resolves   uint64  // Resolutions performed, winners and losers alike
	Duplicates uint64  // Resolutions discarded by first-writer-wins
	HitRate    float64 // Hit percentage over all lookups
}

// Stats returns the cache's counters at a point in time.
func (c *Cache) Stats() CacheStats {
	var s CacheStats
	s.Records = c.Len()
	s.Hits = c.hits.Load()
	s.Misses = c.misses.Load()
	s.Resolves = c.resolves.Load()
	s.Duplicates = c.duplicates.Load()
	total := s.Hits + s.Misses
	if total > 0 {
		s.HitRate = float64(s.Hits) * 100 / float64(total)
	}
	return s
}

// RecordStats describes one published record for reporting. Owner and
// Params are canonical names, the same spelling snapshots use, so profile
// rows can be replayed later. Calls counts dynamic dispatches only; the
// typed fast path carries no counter.
type RecordStats struct {
	Owner  string
	Method string
	Params []string
	Static bool
	Hits   uint64
	Calls  uint64
}

// RecordStats lists per-record counters, hottest first.
func (c *Cache) RecordStats() []RecordStats {
	c.mu.RLock()
	out := make([]RecordStats, 0, len(c.records))
	for _, bucket := range c.records {
		for _, rec := range bucket {
			params := make([]string, len(rec.params))
			for i, p := range rec.params {
				params[i] = canonicalName(p)
			}
			out = append(out, RecordStats{
				Owner:  canonicalName(rec.owner),
				Method: rec.name,
				Params: params,
				Static: rec.static,
				Hits:   rec.hits.Load(),
				Calls:  rec.calls.Load(),
			})
		}
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hits != out[j].Hits {
			return out[i].Hits > out[j].Hits
		}
		if out[i].Owner != out[j].Owner {
			return out[i].Owner < out[j].Owner
		}
		return out[i].Method < out[j].Method
	})
	return out
}
