package bind

import (
	"errors"
	"reflect"
	"testing"
)

func TestTypedCallFastPath(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	got, err := Call1R[int](h, 5)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got != 5 {
		t.Errorf("Add = %d, want 5", got)
	}
	got, err = Call1R[int](h, 7)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if got != 12 {
		t.Errorf("Add = %d, want 12", got)
	}
}

func TestTypedCallVoid(t *testing.T) {
	c := &Calc{total: 9}
	h, err := Bind(c, "Reset")
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	if err := Call0(h); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if c.total != 0 {
		t.Errorf("total = %d, want 0", c.total)
	}
}

func TestTypedCallErrorReturn(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Div", reflect.TypeFor[int](), reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	got, err := Call2R[int](h, 10, 2)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got != 5 {
		t.Errorf("Div = %d, want 5", got)
	}

	got, err = Call2R[int](h, 1, 0)
	if err == nil {
		t.Fatal("Expected the method's own error")
	}
	if err.Error() != "division by zero" {
		t.Errorf("error = %q, want the method's message", err)
	}
	if got != 0 {
		t.Errorf("result = %d, want the zero value alongside an error", got)
	}
}

func TestVoidCallErrorPropagation(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Fail")
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	if err := Call0(h); err == nil || err.Error() != "always fails" {
		t.Errorf("Call0 = %v, want the method's error", err)
	}
}

func TestTypedCallNoAllocation(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	allocs := testing.AllocsPerRun(200, func() {
		Call1R[int](h, 1)
	})
	if allocs != 0 {
		t.Errorf("bound method call allocated %.1f per op, want 0", allocs)
	}

	w, err := Wrap(func(n int) int { return n })
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	defer w.Dispose()

	allocs = testing.AllocsPerRun(200, func() {
		Call1R[int](w, 1)
	})
	if allocs != 0 {
		t.Errorf("wrapped function call allocated %.1f per op, want 0", allocs)
	}
}

func TestInvokeDynamic(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "AddPair", reflect.TypeFor[int](), reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	res, err := h.Invoke(3, 4)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("results = %d, want 1", len(res))
	}
	if res[0].(int) != 7 {
		t.Errorf("AddPair = %v, want 7", res[0])
	}
}

func TestInvokeMultiReturn(t *testing.T) {
	c := &Calc{total: 3}
	h, err := Bind(c, "Pair")
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	res, err := h.Invoke()
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("results = %d, want 2", len(res))
	}
	if res[0].(int) != 3 || res[1].(string) != "total" {
		t.Errorf("Pair = %v, want [3 total]", res)
	}
}

func TestInvokeArityMismatch(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	_, err = h.Invoke(1, 2)
	var ae *ArityError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %T, want *ArityError", err)
	}
	if ae.Expected != 1 || ae.Actual != 2 {
		t.Errorf("ArityError = %d/%d, want 1/2", ae.Expected, ae.Actual)
	}
}

func TestInvokeUnsupportedArity(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	_, err = h.Invoke(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	var ua *UnsupportedArityError
	if !errors.As(err, &ua) {
		t.Fatalf("error = %T, want *UnsupportedArityError", err)
	}
	if ua.Count != 16 {
		t.Errorf("Count = %d, want 16", ua.Count)
	}
}

func TestInvokeMismatchedArgument(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	_, err = h.Invoke("x")
	var sm *SignatureMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("error = %T, want *SignatureMismatchError", err)
	}
	if sm.Position != 0 {
		t.Errorf("Position = %d, want 0", sm.Position)
	}
	if sm.Expected != reflect.TypeFor[int]() || sm.Actual != reflect.TypeFor[string]() {
		t.Errorf("Expected/Actual = %v/%v, want int/string", sm.Expected, sm.Actual)
	}
}

func TestInvokeNilArgument(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "IsNil", reflect.TypeFor[*Box]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	res, err := h.Invoke(nil)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if res[0].(bool) != true {
		t.Error("Expected an untyped nil to become a typed nil pointer")
	}

	// A typed nil travels the fast path.
	got, err := Call1R[bool, *Box](h, nil)
	if err != nil {
		t.Fatalf("typed call failed: %v", err)
	}
	if !got {
		t.Error("Expected true from a nil pointer argument")
	}
}

func TestStrictArgumentCheck(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()
	h.SetStrict(true)

	_, err = Call1R[int](h, int64(5))
	var sm *SignatureMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("error = %T, want *SignatureMismatchError", err)
	}
	if sm.Position != 0 {
		t.Errorf("Position = %d, want 0", sm.Position)
	}

	// The matching type still passes.
	got, err := Call1R[int](h, 5)
	if err != nil {
		t.Fatalf("strict call failed: %v", err)
	}
	if got != 5 {
		t.Errorf("Add = %d, want 5", got)
	}
}

func TestStrictReturnCheck(t *testing.T) {
	c := &Calc{}
	h, err := Bind(c, "Add", reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()
	h.SetStrict(true)

	// Discarding a value return fails under strict.
	err = Call1(h, 5)
	var sm *SignatureMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("void call error = %T, want *SignatureMismatchError", err)
	}
	if sm.Position != ReturnPosition {
		t.Errorf("Position = %d, want ReturnPosition", sm.Position)
	}

	// Asking for the wrong return type fails too.
	_, err = Call1R[string](h, 5)
	if !errors.As(err, &sm) {
		t.Fatalf("typed call error = %T, want *SignatureMismatchError", err)
	}
	if sm.Position != ReturnPosition {
		t.Errorf("Position = %d, want ReturnPosition", sm.Position)
	}
}

func TestStrictAcceptsErrorShapes(t *testing.T) {
	c := &Calc{}

	div, err := Bind(c, "Div", reflect.TypeFor[int](), reflect.TypeFor[int]())
	if err != nil {
		t.Fatalf("Bind Div failed: %v", err)
	}
	defer div.Dispose()
	div.SetStrict(true)
	got, err := Call2R[int](div, 8, 2)
	if err != nil {
		t.Fatalf("strict (int, error) call failed: %v", err)
	}
	if got != 4 {
		t.Errorf("Div = %d, want 4", got)
	}

	fail, err := Bind(c, "Fail")
	if err != nil {
		t.Fatalf("Bind Fail failed: %v", err)
	}
	defer fail.Dispose()
	fail.SetStrict(true)
	if err := Call0(fail); err == nil || err.Error() != "always fails" {
		t.Errorf("strict error-only call = %v, want the method's error", err)
	}
}

func TestStrictRejectsMultiReturn(t *testing.T) {
	c := &Calc{total: 3}
	h, err := Bind(c, "Pair")
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer h.Dispose()

	// Lenient narrowing takes the first value.
	got, err := Call0R[int](h)
	if err != nil {
		t.Fatalf("lenient call failed: %v", err)
	}
	if got != 3 {
		t.Errorf("Pair narrowed = %d, want 3", got)
	}

	h.SetStrict(true)
	_, err = Call0R[int](h)
	var sm *SignatureMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("error = %T, want *SignatureMismatchError", err)
	}
	if sm.Multi != 2 {
		t.Errorf("Multi = %d, want 2", sm.Multi)
	}
}

func TestCallMaxArity(t *testing.T) {
	h, err := Wrap(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15 int) int {
		return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14 + a15
	})
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	defer h.Dispose()

	got, err := Call15R[int](h, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got != 120 {
		t.Errorf("sum = %d, want 120", got)
	}
}
