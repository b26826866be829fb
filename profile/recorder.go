package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/chazu/methodbind/bind"
)

// Recorder ties one cache to one recording session. Flush may be called
// repeatedly; rows are upserted, so the final flush wins.
type Recorder struct {
	cache   *bind.Cache
	store   *Store
	session string
}

// NewRecorder opens a session for the cache and returns the recorder.
func NewRecorder(cache *bind.Cache, store *Store) (*Recorder, error) {
	id := uuid.NewString()
	if err := store.beginSession(id, cache.Mode().String()); err != nil {
		return nil, err
	}
	log.Debugf("profile session %s started", id)
	return &Recorder{cache: cache, store: store, session: id}, nil
}

// SessionID returns the session this recorder writes under.
func (r *Recorder) SessionID() string {
	return r.session
}

// Flush persists the cache's current per-record counters.
func (r *Recorder) Flush() error {
	stats := r.cache.RecordStats()
	sites := make([]Site, len(stats))
	for i, st := range stats {
		sites[i] = Site{
			Owner:  st.Owner,
			Method: st.Method,
			Params: st.Params,
			Static: st.Static,
			Hits:   st.Hits,
			Calls:  st.Calls,
		}
	}
	if err := r.store.writeSites(r.session, sites); err != nil {
		return err
	}
	log.Infof("profile session %s: flushed %d call sites", r.session, len(sites))
	return nil
}

// Snapshot converts a site list into a replayable snapshot, usable with
// Cache.Warm to preload the hot set observed in earlier sessions.
func Snapshot(sites []Site) *bind.Snapshot {
	entries := make([]bind.SnapshotEntry, len(sites))
	for i, site := range sites {
		entries[i] = bind.SnapshotEntry{
			Owner:  site.Owner,
			Method: site.Method,
			Params: site.Params,
			Static: site.Static,
			Hits:   site.Hits,
		}
	}
	return &bind.Snapshot{
		Version: bind.SnapshotVersion,
		TakenAt: time.Now().Unix(),
		Mode:    "profile",
		Entries: entries,
	}
}
