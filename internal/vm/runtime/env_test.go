package runtime

import "testing"

func TestEmptyEnvLookup(t *testing.T) {
	if _, ok := NewEnv().Lookup("x"); ok {
		t.Error("expected lookup in empty env to fail")
	}
}

func TestExtendAndLookup(t *testing.T) {
	env := NewEnv().Extend("x", NatOf(1)).Extend("y", NatOf(2))

	v, ok := env.Lookup("x")
	if !ok || v.(Nat).N.Int64() != 1 {
		t.Fatalf("expected x = 1, got %v (ok=%v)", v, ok)
	}
	v, ok = env.Lookup("y")
	if !ok || v.(Nat).N.Int64() != 2 {
		t.Fatalf("expected y = 2, got %v (ok=%v)", v, ok)
	}
}

func TestShadowing(t *testing.T) {
	env := NewEnv().Extend("x", NatOf(1)).Extend("x", NatOf(2))
	v, _ := env.Lookup("x")
	if v.(Nat).N.Int64() != 2 {
		t.Fatalf("expected innermost binding 2, got %s", v)
	}
}

func TestExtendIsPersistent(t *testing.T) {
	// Extending an environment must not disturb the snapshot a frame
	// captured earlier: this is what lets frames hold their environment
	// as an O(1) copy.
	before := NewEnv().Extend("x", NatOf(1))
	after := before.Extend("x", NatOf(2)).Extend("y", NatOf(3))

	v, _ := before.Lookup("x")
	if v.(Nat).N.Int64() != 1 {
		t.Fatalf("expected snapshot to still see x = 1, got %s", v)
	}
	if _, ok := before.Lookup("y"); ok {
		t.Error("expected snapshot to not see the later binding y")
	}
	v, _ = after.Lookup("x")
	if v.(Nat).N.Int64() != 2 {
		t.Fatalf("expected extended env to see x = 2, got %s", v)
	}
}

func TestNames(t *testing.T) {
	env := NewEnv().Extend("x", NatOf(1)).Extend("y", NatOf(2)).Extend("x", NatOf(3))
	names := env.Names()
	want := []string{"x", "y", "x"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, names)
		}
	}
}
