package types

import "testing"

func TestFlattenIdempotent(t *testing.T) {
	nested := NewFunction([]Type{Int, NewFunction([]Type{Int, Int})})
	flat := nested.Flatten()

	if !flat.Equals(NewFunction([]Type{Int, Int, Int})) {
		t.Fatalf("flatten produced %s, want Int -> Int -> Int", flat)
	}
	if !flat.Flatten().Equals(flat) {
		t.Fatalf("flatten is not idempotent: %s != %s", flat.Flatten(), flat)
	}
}

func TestFlattenOnlyTouchesTail(t *testing.T) {
	// A function occupying a parameter position (not the last component)
	// must be preserved as a nested higher-order parameter, per spec §3.1.
	higherOrder := NewFunction([]Type{NewFunction([]Type{Int, Int}), Int})
	flat := higherOrder.Flatten()

	if flat.Components()[0].Kind() != KindFunction {
		t.Fatalf("flatten spliced a parameter-position function: %s", flat)
	}
}

func TestFlattenPrimitiveIsNoop(t *testing.T) {
	if !Int.Flatten().Equals(Int) {
		t.Fatalf("flatten mutated a primitive type")
	}
}

func TestApplySingleParam(t *testing.T) {
	f := NewFunction([]Type{Int, Bool})
	r, err := Apply(f, Int)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !r.Equals(Bool) {
		t.Fatalf("got %s, want Bool", r)
	}
}

func TestApplyCurried(t *testing.T) {
	f := NewFunction([]Type{Int, Int, Bool})
	r, err := Apply(f, Int)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !r.Equals(NewFunction([]Type{Int, Bool})) {
		t.Fatalf("got %s, want Int -> Bool", r)
	}
}

func TestApplyMismatch(t *testing.T) {
	f := NewFunction([]Type{Int, Int})
	if _, err := Apply(f, Bool); err == nil {
		t.Fatalf("expected ErrNotApplicable for mismatched argument type")
	}
}

func TestApplyNonFunction(t *testing.T) {
	if _, err := Apply(Int, Int); err == nil {
		t.Fatalf("expected ErrNotApplicable applying to a non-function")
	}
}

func TestApplySoundness(t *testing.T) {
	// If apply(f, a) succeeds with result r, then f == Function([a,
	// ...components of r...]) after flattening (spec §8.1).
	f := NewFunction([]Type{Int, Bool, Char})
	r, err := Apply(f, Int)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	rebuilt := NewFunction(append([]Type{Int}, componentsOf(r)...)).Flatten()
	if !rebuilt.Equals(f.Flatten()) {
		t.Fatalf("apply soundness violated: rebuilt %s != original %s", rebuilt, f)
	}
}

func componentsOf(t Type) []Type {
	if t.Kind() != KindFunction {
		return []Type{t}
	}
	return t.Components()
}

func TestEqualsStructural(t *testing.T) {
	a := NewFunction([]Type{Int, Bool})
	b := NewFunction([]Type{Int, Bool})
	c := NewFunction([]Type{Int, Char})
	if !a.Equals(b) {
		t.Fatalf("expected structurally equal function types to be Equal")
	}
	if a.Equals(c) {
		t.Fatalf("expected differing component types to be unequal")
	}
}

func TestNewFunctionTooFewComponentsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a 1-component function type")
		}
	}()
	NewFunction([]Type{Int})
}

func TestNewPrimitiveRejectsFunction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic building a primitive from KindFunction")
		}
	}()
	NewPrimitive(KindFunction)
}
