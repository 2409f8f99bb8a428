package runtime

import "testing"

func TestAllocPointersIncrease(t *testing.T) {
	s := NewStore()
	p0 := s.Alloc(NatOf(1))
	p1 := s.Alloc(NatOf(2))
	p2 := s.Alloc(NatOf(3))
	if p0 != 0 || p1 != 1 || p2 != 2 {
		t.Fatalf("expected dense increasing pointers 0,1,2, got %d,%d,%d", p0, p1, p2)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 cells, got %d", s.Len())
	}
}

func TestDeref(t *testing.T) {
	s := NewStore()
	p := s.Alloc(NatOf(42))

	v, ok := s.Deref(p)
	if !ok {
		t.Fatal("expected deref of allocated pointer to succeed")
	}
	if n, isNat := v.(Nat); !isNat || n.N.Int64() != 42 {
		t.Fatalf("expected Nat 42, got %s", v)
	}

	if _, ok := s.Deref(Pointer(99)); ok {
		t.Error("expected deref of unallocated pointer to fail")
	}
	if _, ok := s.Deref(Pointer(-1)); ok {
		t.Error("expected deref of negative pointer to fail")
	}
}

func TestMutate(t *testing.T) {
	s := NewStore()
	p := s.Alloc(NatOf(1))

	if err := s.Mutate(p, NatOf(7)); err != nil {
		t.Fatalf("unexpected mutate error: %v", err)
	}
	v, _ := s.Deref(p)
	if n, ok := v.(Nat); !ok || n.N.Int64() != 7 {
		t.Fatalf("expected mutated value 7, got %s", v)
	}

	// The store is untyped: replacing a Nat with a Bool is allowed.
	if err := s.Mutate(p, Bool{B: true}); err != nil {
		t.Fatalf("unexpected mutate error: %v", err)
	}
}

func TestMutateDangling(t *testing.T) {
	s := NewStore()
	err := s.Mutate(Pointer(0), NatOf(1))
	if err == nil {
		t.Fatal("expected dangling mutate to fail")
	}
	if !IsDangling(err) {
		t.Fatalf("expected Dangling, got %T: %v", err, err)
	}
	d := err.(*Dangling)
	if d.Pointer != 0 {
		t.Errorf("expected pointer 0 in error, got %d", d.Pointer)
	}
}
