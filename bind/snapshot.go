package bind

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// SnapshotVersion is bumped when the wire layout changes.
const SnapshotVersion = 1

// SnapshotEntry names one published resolution portably. Types travel as
// canonical names, never as reflect values, so a snapshot is only as
// replayable as the registry handed to Warm.
type SnapshotEntry struct {
	Owner  string   `cbor:"1,keyasint"`
	Method string   `cbor:"2,keyasint"`
	Params []string `cbor:"3,keyasint,omitempty"`
	Static bool     `cbor:"4,keyasint,omitempty"`
	Hits   uint64   `cbor:"5,keyasint,omitempty"`
}

// Snapshot is the serializable shape of a cache's published records.
type Snapshot struct {
	Version int             `cbor:"1,keyasint"`
	TakenAt int64           `cbor:"2,keyasint"` // unix seconds
	Mode    string          `cbor:"3,keyasint"`
	Entries []SnapshotEntry `cbor:"4,keyasint,omitempty"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bind: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalSnapshot serializes a Snapshot to CBOR bytes.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("bind: unmarshal snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("bind: unsupported snapshot version %d", s.Version)
	}
	return &s, nil
}

// Snapshot captures the cache's published records. Entries are sorted by
// owner, method and signature, and encoding is canonical, so equal caches
// snapshot to equal bytes.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	entries := make([]SnapshotEntry, 0, len(c.records))
	for _, bucket := range c.records {
		for _, rec := range bucket {
			params := make([]string, len(rec.params))
			for i, p := range rec.params {
				params[i] = canonicalName(p)
			}
			entries = append(entries, SnapshotEntry{
				Owner:  canonicalName(rec.owner),
				Method: rec.name,
				Params: params,
				Static: rec.static,
				Hits:   rec.hits.Load(),
			})
		}
	}
	c.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Owner != b.Owner {
			return a.Owner < b.Owner
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		if len(a.Params) != len(b.Params) {
			return len(a.Params) < len(b.Params)
		}
		for k := range a.Params {
			if a.Params[k] != b.Params[k] {
				return a.Params[k] < b.Params[k]
			}
		}
		return false
	})

	return &Snapshot{
		Version: SnapshotVersion,
		TakenAt: time.Now().Unix(),
		Mode:    c.mode.String(),
		Entries: entries,
	}
}

// Warm replays a snapshot against the cache, resolving each entry whose
// types the registry can supply. Entries with unknown types, or whose
// method no longer resolves, are skipped rather than failing the replay.
func (c *Cache) Warm(s *Snapshot, reg *TypeRegistry) (warmed, skipped int, err error) {
	if s == nil {
		return 0, 0, fmt.Errorf("bind: nil snapshot")
	}
	if s.Version != SnapshotVersion {
		return 0, 0, fmt.Errorf("bind: unsupported snapshot version %d", s.Version)
	}
	if reg == nil {
		reg = NewTypeRegistry()
	}
	for _, e := range s.Entries {
		owner, ok := reg.Lookup(e.Owner)
		if !ok {
			skipped++
			continue
		}
		params := make([]reflect.Type, len(e.Params))
		for i, pn := range e.Params {
			p, ok := reg.Lookup(pn)
			if !ok {
				params = nil
				break
			}
			params[i] = p
		}
		if params == nil && len(e.Params) > 0 {
			skipped++
			continue
		}
		if _, rerr := c.Resolve(owner, e.Method, params); rerr != nil {
			skipped++
			continue
		}
		warmed++
	}
	log.Infof("warmed %d cache entries, skipped %d", warmed, skipped)
	return warmed, skipped, nil
}
