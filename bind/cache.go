package bind

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// AcquisitionMode selects where a cache's resolutions come from.
type AcquisitionMode int

const (
	// AcquireReflect resolves misses by scanning method sets and suite
	// entries at runtime.
	AcquireReflect AcquisitionMode = iota

	// AcquirePrebound resolves misses only from stubs registered ahead of
	// time; anything else fails as not found.
	AcquirePrebound
)

func (m AcquisitionMode) String() string {
	switch m {
	case AcquireReflect:
		return "reflect"
	case AcquirePrebound:
		return "prebound"
	default:
		return fmt.Sprintf("AcquisitionMode(%d)", int(m))
	}
}

type cacheKey struct {
	owner reflect.Type
	name  string
	fp    uint64
}

// Cache memoizes method resolutions. Lookups take the read lock only;
// resolution work runs outside any lock, so two goroutines racing on the
// same miss may both resolve, but only the first writer publishes and the
// loser's record is discarded. A published Record is never replaced.
//
// Keys carry the signature fingerprint as a pre-filter; each bucket holds
// the full parameter lists and equality on those is ground truth, so a
// fingerprint collision costs a scan, never a wrong record.
type Cache struct {
	mu      sync.RWMutex
	records map[cacheKey][]*Record

	suite *FuncSuite
	mode  AcquisitionMode
	used  atomic.Bool

	hits       atomic.Uint64
	misses     atomic.Uint64
	resolves   atomic.Uint64
	duplicates atomic.Uint64
}

// Default is the process-wide cache used by the package-level Bind,
// BindStatic and Wrap helpers.
var Default = NewCache()

// NewCache returns an empty cache in AcquireReflect mode.
func NewCache() *Cache {
	return NewCacheWithMode(AcquireReflect)
}

// NewCacheWithMode returns an empty cache with the given acquisition mode.
func NewCacheWithMode(mode AcquisitionMode) *Cache {
	return &Cache{
		records: make(map[cacheKey][]*Record),
		suite:   NewFuncSuite(),
		mode:    mode,
	}
}

func bucketFind(bucket []*Record, params []reflect.Type) *Record {
	for _, r := range bucket {
		if typesEqual(r.params, params) {
			return r
		}
	}
	return nil
}

// Suite exposes the cache's function suite for registration.
func (c *Cache) Suite() *FuncSuite { return c.suite }

// Mode reports the cache's acquisition mode.
func (c *Cache) Mode() AcquisitionMode { return c.mode }

// SetAcquisition changes the acquisition mode. It fails once the cache has
// served a resolution, so the mode is effectively fixed at first use.
func (c *Cache) SetAcquisition(mode AcquisitionMode) error {
	if c.used.Load() {
		log.Debugf("acquisition mode locked at %s, rejecting switch to %s", c.mode, mode)
		return ErrAcquisitionLocked
	}
	c.mode = mode
	return nil
}

// Resolve returns the record for (owner, name, params), matching and
// publishing it on first use. The owner is normalized to pointer form, so
// T and *T share records.
func (c *Cache) Resolve(owner reflect.Type, name string, params []reflect.Type) (*Record, error) {
	c.used.Store(true)
	owner = normalizeOwner(owner)
	key := cacheKey{owner: owner, name: name, fp: fingerprint(params)}

	c.mu.RLock()
	rec := bucketFind(c.records[key], params)
	c.mu.RUnlock()
	if rec != nil {
		c.hits.Add(1)
		rec.hits.Add(1)
		return rec, nil
	}
	c.misses.Add(1)

	var (
		m   *matchResult
		err error
	)
	switch c.mode {
	case AcquirePrebound:
		m, err = findStub(owner, name, params)
	default:
		m, err = findMethod(owner, name, params, c.suite)
	}
	if err != nil {
		return nil, err
	}
	c.resolves.Add(1)

	fresh := newRecord(m, key.fp)
	c.mu.Lock()
	if prior := bucketFind(c.records[key], params); prior != nil {
		c.mu.Unlock()
		c.duplicates.Add(1)
		prior.hits.Add(1)
		return prior, nil
	}
	c.records[key] = append(c.records[key], fresh)
	c.mu.Unlock()
	log.Debugf("resolved %s.%s/%d (%s)", typeName(owner), name, len(params), c.mode)
	return fresh, nil
}

// Lookup returns the published record for (owner, name, params) without
// resolving, or nil when none exists.
func (c *Cache) Lookup(owner reflect.Type, name string, params []reflect.Type) *Record {
	owner = normalizeOwner(owner)
	key := cacheKey{owner: owner, name: name, fp: fingerprint(params)}
	c.mu.RLock()
	rec := bucketFind(c.records[key], params)
	c.mu.RUnlock()
	return rec
}

// Len reports how many records the cache holds.
func (c *Cache) Len() int {
	c.mu.RLock()
	n := 0
	for _, bucket := range c.records {
		n += len(bucket)
	}
	c.mu.RUnlock()
	return n
}
