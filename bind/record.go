package bind

import (
	"reflect"
	"sync/atomic"
)

// Record is one published resolution: the immutable outcome of matching
// (owner, name, params) plus per-record counters. Every field except the
// counters is written exactly once, before the record becomes visible to
// other goroutines, and never after.
type Record struct {
	owner    reflect.Type
	name     string
	static   bool
	index    int
	fn       reflect.Value
	binder   func(recv any) any
	params   []reflect.Type
	returns  []reflect.Type
	template bool
	bindings []TypeBinding
	fp       uint64

	// boxed is the pre-asserted call target for static entries; bound
	// methods box per receiver at handle creation instead.
	boxed any

	hits  atomic.Uint64
	calls atomic.Uint64
}

func newRecord(m *matchResult, fp uint64) *Record {
	r := &Record{
		owner:    m.owner,
		name:     m.name,
		static:   m.static,
		index:    m.index,
		fn:       m.fn,
		binder:   m.binder,
		params:   m.params,
		returns:  m.returns,
		template: m.template,
		bindings: m.bindings,
		fp:       fp,
	}
	if m.static && m.fn.IsValid() {
		r.boxed = m.fn.Interface()
	}
	return r
}

// Owner reports the normalized owner type (pointer form for methods).
func (r *Record) Owner() reflect.Type { return r.owner }

// Name reports the method or suite-function name.
func (r *Record) Name() string { return r.name }

// Static reports whether the record targets a suite function rather than a
// method with a receiver.
func (r *Record) Static() bool { return r.static }

// Params returns a copy of the bound parameter list. For template matches
// this is the caller's concrete list, not the declared one.
func (r *Record) Params() []reflect.Type { return copyTypes(r.params) }

// Returns returns a copy of the declared result list.
func (r *Record) Returns() []reflect.Type { return copyTypes(r.returns) }

// Template reports whether inference ran during the match.
func (r *Record) Template() bool { return r.template }

// Bindings returns the type-variable bindings established by inference,
// empty for non-template records.
func (r *Record) Bindings() []TypeBinding {
	out := make([]TypeBinding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Fingerprint reports the 64-bit signature fingerprint the record was
// published under.
func (r *Record) Fingerprint() uint64 { return r.fp }

// Hits reports how many lookups were served by this record after it was
// published.
func (r *Record) Hits() uint64 { return r.hits.Load() }

// Calls reports how many invocations went through this record's slow path.
// Fast-path calls bypass the counter; see CacheStats.
func (r *Record) Calls() uint64 { return r.calls.Load() }
