package scope

import "testing"

func TestShadowing(t *testing.T) {
	parent := New[int]()
	parent.Set("x", 1)

	child := parent.NewChild()
	child.Set("x", 2)

	if v, _ := child.Get("x"); v != 2 {
		t.Fatalf("child.Get(x) = %d, want 2", v)
	}
	if v, _ := parent.Get("x"); v != 1 {
		t.Fatalf("parent.Get(x) = %d, want 1 (unchanged by child write)", v)
	}
}

func TestContainsClimbsAncestors(t *testing.T) {
	parent := New[int]()
	parent.Set("x", 1)
	child := parent.NewChild()

	if !child.Contains("x") {
		t.Fatalf("expected child.Contains(x) to climb to parent")
	}
	if child.LocalContains("x") {
		t.Fatalf("expected child.LocalContains(x) to be false: not bound locally")
	}
}

func TestGetMissing(t *testing.T) {
	m := New[int]()
	if _, ok := m.Get("missing"); ok {
		t.Fatalf("expected Get on an empty map to report not-found")
	}
}

func TestMustGetPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet to panic on a missing key")
		}
	}()
	New[int]().MustGet("missing")
}

func TestPopRestoresParentScope(t *testing.T) {
	parent := New[int]()
	parent.Set("x", 1)
	child := parent.NewChild()
	child.Set("y", 2)

	// Discarding child and continuing to use parent should see none of
	// the child's bindings.
	if parent.Contains("y") {
		t.Fatalf("parent must not see child-only bindings")
	}
}
