package bind

import (
	"reflect"
	"testing"
)

// BenchmarkTypedDispatch measures a bound method call through the typed
// fast path.
func BenchmarkTypedDispatch(b *testing.B) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		b.Fatal(err)
	}
	defer h.Dispose()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Call1R[int](h, 1)
	}
}

// BenchmarkDynamicInvoke measures the boxed slow path for the same call.
func BenchmarkDynamicInvoke(b *testing.B) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		b.Fatal(err)
	}
	defer h.Dispose()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Invoke(1)
	}
}

// BenchmarkResolveHit measures a cache lookup that finds its record.
func BenchmarkResolveHit(b *testing.B) {
	cache := NewCache()
	params := []reflect.Type{reflect.TypeFor[int]()}
	if _, err := cache.Resolve(reflect.TypeFor[*Calc](), "Add", params); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Resolve(reflect.TypeFor[*Calc](), "Add", params)
	}
}

// BenchmarkBind measures the full bind-and-dispose cycle against a warm
// cache.
func BenchmarkBind(b *testing.B) {
	cache := NewCache()
	c := &Calc{}
	intT := reflect.TypeFor[int]()

	h, err := cache.Bind(c, "Add", intT)
	if err != nil {
		b.Fatal(err)
	}
	h.Dispose()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := cache.Bind(c, "Add", intT)
		h.Dispose()
	}
}

// BenchmarkDispatchComparison puts the dispatch tiers side by side against
// a direct call and raw reflection.
func BenchmarkDispatchComparison(b *testing.B) {
	c := &Calc{}

	b.Run("Direct", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.Add(1)
		}
	})

	b.Run("TypedHandle", func(b *testing.B) {
		h, err := Bind(c, "Add", reflect.TypeFor[int]())
		if err != nil {
			b.Fatal(err)
		}
		defer h.Dispose()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Call1R[int](h, 1)
		}
	})

	b.Run("Invoke", func(b *testing.B) {
		h, err := Bind(c, "Add", reflect.TypeFor[int]())
		if err != nil {
			b.Fatal(err)
		}
		defer h.Dispose()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			h.Invoke(1)
		}
	})

	b.Run("ReflectCall", func(b *testing.B) {
		m := reflect.ValueOf(c).MethodByName("Add")
		args := []reflect.Value{reflect.ValueOf(1)}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Call(args)
		}
	})
}
