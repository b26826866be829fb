package bind

import (
	"errors"
	"reflect"
	"testing"
)

// MathOps is an owner tag: it has no methods of its own, only suite
// functions registered against it.
type MathOps struct{}

func TestSuiteRegisterAndBind(t *testing.T) {
	c := NewCache()
	err := c.Suite().Register(reflect.TypeFor[MathOps](), "Clamp", func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	h, err := c.BindStatic(reflect.TypeFor[MathOps](), "Clamp")
	if err != nil {
		t.Fatalf("BindStatic failed: %v", err)
	}
	defer h.Dispose()

	if !h.Record().Static() {
		t.Error("Expected a static record")
	}
	if h.Receiver() != nil {
		t.Error("Expected no receiver on a static handle")
	}

	got, err := Call3R[int](h, 12, 0, 10)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got != 10 {
		t.Errorf("Clamp = %d, want 10", got)
	}
}

func TestSuiteOverloads(t *testing.T) {
	c := NewCache()
	suite := c.Suite()
	if err := suite.Register(reflect.TypeFor[MathOps](), "Abs", func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}); err != nil {
		t.Fatalf("Register int overload failed: %v", err)
	}
	if err := suite.Register(reflect.TypeFor[MathOps](), "Abs", func(f float64) float64 {
		if f < 0 {
			return -f
		}
		return f
	}); err != nil {
		t.Fatalf("Register float64 overload failed: %v", err)
	}
	if suite.Len() != 2 {
		t.Errorf("Len = %d, want 2", suite.Len())
	}

	// Name-only binds cannot choose between overloads.
	_, err := c.BindStatic(reflect.TypeFor[MathOps](), "Abs")
	var us *UnsupportedSignatureError
	if !errors.As(err, &us) {
		t.Fatalf("name-only bind error = %T, want *UnsupportedSignatureError", err)
	}

	h, err := c.BindStatic(reflect.TypeFor[MathOps](), "Abs", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("BindStatic int failed: %v", err)
	}
	defer h.Dispose()
	got, err := Call1R[int](h, -4)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got != 4 {
		t.Errorf("Abs = %d, want 4", got)
	}
}

func TestSuiteRejectsDuplicateSignature(t *testing.T) {
	suite := NewFuncSuite()
	fn := func(n int) int { return n }

	if err := suite.Register(reflect.TypeFor[MathOps](), "Same", fn); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := suite.Register(reflect.TypeFor[MathOps](), "Same", fn); err == nil {
		t.Error("Expected a duplicate signature to be rejected")
	}
}

func TestSuiteRegisterValidation(t *testing.T) {
	suite := NewFuncSuite()
	owner := reflect.TypeFor[MathOps]()

	if err := suite.Register(nil, "F", func() {}); err == nil {
		t.Error("Expected a nil owner to be rejected")
	}
	if err := suite.Register(owner, "", func() {}); err == nil {
		t.Error("Expected an empty name to be rejected")
	}
	if err := suite.Register(owner, "F", 42); err == nil {
		t.Error("Expected a non-function to be rejected")
	}
	if err := suite.Register(owner, "F", (func())(nil)); err == nil {
		t.Error("Expected a nil function to be rejected")
	}
	wide := func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16 int) {}
	if err := suite.Register(owner, "Wide", wide); err == nil {
		t.Error("Expected a 16-parameter function to be rejected")
	}
}

func TestSuiteVariadicRejectedAtMatch(t *testing.T) {
	c := NewCache()
	if err := c.Suite().Register(reflect.TypeFor[MathOps](), "Join", func(parts ...string) string {
		out := ""
		for _, p := range parts {
			out += p
		}
		return out
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Registration succeeds so the failure names the real problem.
	_, err := c.BindStatic(reflect.TypeFor[MathOps](), "Join")
	var us *UnsupportedSignatureError
	if !errors.As(err, &us) {
		t.Fatalf("error = %T, want *UnsupportedSignatureError", err)
	}
}

func TestBindRejectsSuiteFunction(t *testing.T) {
	c := NewCache()
	if err := c.Suite().Register(reflect.TypeFor[Calc](), "Origin", func() int { return 0 }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := c.Bind(&Calc{}, "Origin")
	var ir *InvalidReceiverError
	if !errors.As(err, &ir) {
		t.Fatalf("error = %T, want *InvalidReceiverError", err)
	}
}

func TestBindStaticRejectsInstanceMethod(t *testing.T) {
	c := NewCache()

	_, err := c.BindStatic(reflect.TypeFor[Calc](), "Add", reflect.TypeFor[int]())
	var ir *InvalidReceiverError
	if !errors.As(err, &ir) {
		t.Fatalf("error = %T, want *InvalidReceiverError", err)
	}
}
