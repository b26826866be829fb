package bind

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

// Calc is the workhorse receiver for cache and call tests.
type Calc struct {
	total int
}

func (c *Calc) Add(n int) int        { c.total += n; return c.total }
func (c *Calc) AddPair(a, b int) int { c.total += a + b; return c.total }
func (c *Calc) Total() int           { return c.total }
func (c *Calc) Reset()               { c.total = 0 }

func (c *Calc) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func (c *Calc) Fail() error { return errors.New("always fails") }

func (c *Calc) Pair() (int, string) { return c.total, "total" }

func (c *Calc) IsNil(p *Box) bool { return p == nil }

func TestResolvePublishesOnce(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()

	rec1, err := c.Resolve(reflect.TypeFor[Calc](), "Add", []reflect.Type{intT})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	rec2, err := c.Resolve(reflect.TypeFor[Calc](), "Add", []reflect.Type{intT})
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}

	if rec1 != rec2 {
		t.Error("Expected the same record from repeated resolution")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	if rec1.Hits() != 1 {
		t.Errorf("record hits = %d, want 1", rec1.Hits())
	}
}

func TestResolveRecordShape(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()

	rec, err := c.Resolve(reflect.TypeFor[Calc](), "Add", []reflect.Type{intT})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if rec.Owner() != reflect.TypeFor[*Calc]() {
		t.Errorf("Owner = %v, want *Calc", rec.Owner())
	}
	if rec.Name() != "Add" {
		t.Errorf("Name = %q, want Add", rec.Name())
	}
	if rec.Static() {
		t.Error("Expected an instance record")
	}
	if params := rec.Params(); len(params) != 1 || params[0] != intT {
		t.Errorf("Params = %v, want [int]", params)
	}
	if returns := rec.Returns(); len(returns) != 1 || returns[0] != intT {
		t.Errorf("Returns = %v, want [int]", returns)
	}
	if rec.Template() {
		t.Error("Expected a non-template record")
	}
	if rec.Fingerprint() != fingerprint([]reflect.Type{intT}) {
		t.Error("Fingerprint does not match the parameter list")
	}
}

func TestResolveNormalizesOwner(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()

	byValue, err := c.Resolve(reflect.TypeFor[Calc](), "Add", []reflect.Type{intT})
	if err != nil {
		t.Fatalf("Resolve by value type failed: %v", err)
	}
	byPointer, err := c.Resolve(reflect.TypeFor[*Calc](), "Add", []reflect.Type{intT})
	if err != nil {
		t.Fatalf("Resolve by pointer type failed: %v", err)
	}

	if byValue != byPointer {
		t.Error("Expected Calc and *Calc to share one record")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestResolveDistinctSignatures(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()

	one, err := c.Resolve(reflect.TypeFor[*Calc](), "Add", []reflect.Type{intT})
	if err != nil {
		t.Fatalf("Resolve Add failed: %v", err)
	}
	two, err := c.Resolve(reflect.TypeFor[*Calc](), "AddPair", []reflect.Type{intT, intT})
	if err != nil {
		t.Fatalf("Resolve AddPair failed: %v", err)
	}

	if one == two {
		t.Error("Expected distinct records for distinct call sites")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestResolveMiss(t *testing.T) {
	c := NewCache()

	_, err := c.Resolve(reflect.TypeFor[*Calc](), "Vanish", nil)
	if err == nil {
		t.Fatal("Expected resolution to fail")
	}
	var nf *MethodNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %T, want *MethodNotFoundError", err)
	}
	if nf.Name != "Vanish" {
		t.Errorf("Name = %q, want Vanish", nf.Name)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after a failed resolve, want 0", c.Len())
	}
}

func TestCacheLookup(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()
	params := []reflect.Type{intT}

	if rec := c.Lookup(reflect.TypeFor[*Calc](), "Add", params); rec != nil {
		t.Error("Expected nil from an empty cache")
	}
	if _, err := c.Resolve(reflect.TypeFor[*Calc](), "Add", params); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if rec := c.Lookup(reflect.TypeFor[Calc](), "Add", params); rec == nil {
		t.Error("Expected the published record")
	}
}

func TestCacheStats(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()
	params := []reflect.Type{intT}

	for i := 0; i < 4; i++ {
		if _, err := c.Resolve(reflect.TypeFor[*Calc](), "Add", params); err != nil {
			t.Fatalf("Resolve %d failed: %v", i, err)
		}
	}

	s := c.Stats()
	if s.Records != 1 {
		t.Errorf("Records = %d, want 1", s.Records)
	}
	if s.Misses != 1 {
		t.Errorf("Misses = %d, want 1", s.Misses)
	}
	if s.Hits != 3 {
		t.Errorf("Hits = %d, want 3", s.Hits)
	}
	if s.Resolves != 1 {
		t.Errorf("Resolves = %d, want 1", s.Resolves)
	}
	// 3 hits / 4 lookups = 75%
	if s.HitRate < 74.9 || s.HitRate > 75.1 {
		t.Errorf("HitRate = %.2f, want 75", s.HitRate)
	}
}

func TestRecordStatsHottestFirst(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()

	if _, err := c.Resolve(reflect.TypeFor[*Calc](), "Add", []reflect.Type{intT}); err != nil {
		t.Fatalf("Resolve Add failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := c.Resolve(reflect.TypeFor[*Calc](), "Total", nil); err != nil {
			t.Fatalf("Resolve Total failed: %v", err)
		}
	}

	rs := c.RecordStats()
	if len(rs) != 2 {
		t.Fatalf("RecordStats = %d entries, want 2", len(rs))
	}
	if rs[0].Method != "Total" {
		t.Errorf("hottest = %q, want Total", rs[0].Method)
	}
	if rs[0].Hits != 2 {
		t.Errorf("hottest hits = %d, want 2", rs[0].Hits)
	}
	if rs[0].Owner != "*github.com/chazu/methodbind/bind.Calc" {
		t.Errorf("Owner = %q, want the canonical pointer spelling", rs[0].Owner)
	}
	if rs[1].Params[0] != "int" {
		t.Errorf("Params = %v, want [int]", rs[1].Params)
	}
}

func TestSetAcquisitionLocksAfterFirstUse(t *testing.T) {
	c := NewCache()
	if err := c.SetAcquisition(AcquirePrebound); err != nil {
		t.Fatalf("SetAcquisition on a fresh cache failed: %v", err)
	}
	if err := c.SetAcquisition(AcquireReflect); err != nil {
		t.Fatalf("switching back failed: %v", err)
	}
	if c.Mode() != AcquireReflect {
		t.Errorf("Mode = %v, want AcquireReflect", c.Mode())
	}

	if _, err := c.Resolve(reflect.TypeFor[*Calc](), "Total", nil); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	err := c.SetAcquisition(AcquirePrebound)
	if !errors.Is(err, ErrAcquisitionLocked) {
		t.Errorf("SetAcquisition after use = %v, want ErrAcquisitionLocked", err)
	}
}

func TestAcquisitionModeString(t *testing.T) {
	if s := AcquireReflect.String(); s != "reflect" {
		t.Errorf("AcquireReflect = %q, want reflect", s)
	}
	if s := AcquirePrebound.String(); s != "prebound" {
		t.Errorf("AcquirePrebound = %q, want prebound", s)
	}
}

func TestConcurrentResolveConverges(t *testing.T) {
	c := NewCache()
	intT := reflect.TypeFor[int]()

	const n = 50
	recs := make([]*Record, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := c.Resolve(reflect.TypeFor[*Calc](), "Add", []reflect.Type{intT})
			if err != nil {
				t.Errorf("Resolve failed: %v", err)
				return
			}
			recs[i] = rec
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if recs[i] != recs[0] {
			t.Fatalf("goroutine %d got a different record", i)
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	s := c.Stats()
	if s.Hits+s.Misses != n {
		t.Errorf("Hits+Misses = %d, want %d", s.Hits+s.Misses, n)
	}
	// Racing resolvers may duplicate work, but exactly one wins.
	if s.Resolves != s.Duplicates+1 {
		t.Errorf("Resolves = %d with %d duplicates, want Resolves == Duplicates+1", s.Resolves, s.Duplicates)
	}
}
