package classify

import "testing"

func TestCached_Memoises(t *testing.T) {
	calls := 0
	inner := Func(func(f []float32) (int, float32) {
		calls++
		return int(f[0]), 0.5
	})
	c, err := NewCached(inner, 8)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	for i := 0; i < 3; i++ {
		if id, _ := c.Classify([]float32{2, 0}); id != 2 {
			t.Fatalf("expected id 2, got %d", id)
		}
	}
	if calls != 1 {
		t.Fatalf("expected one inner call, got %d", calls)
	}
	if id, _ := c.Classify([]float32{3, 0}); id != 3 || calls != 2 {
		t.Fatalf("different vector should miss the cache (id=%d calls=%d)", id, calls)
	}
	if c.(*Cached).Len() != 2 {
		t.Fatalf("expected 2 entries")
	}
}

func TestNewCached_DisabledReturnsInner(t *testing.T) {
	inner := Constant{ID: 4}
	c, err := NewCached(inner, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(Constant); !ok {
		t.Fatalf("expected the inner classifier back, got %T", c)
	}
}

func TestCached_HashCollisionRecomputes(t *testing.T) {
	calls := 0
	inner := Func(func(f []float32) (int, float32) {
		calls++
		return int(f[0]), 0.5
	})
	c, err := NewCached(inner, 8)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	cached := c.(*Cached)
	cached.key = func([]float32) uint64 { return 1 }

	if id, _ := c.Classify([]float32{2, 0}); id != 2 {
		t.Fatalf("expected id 2, got %d", id)
	}
	if id, _ := c.Classify([]float32{3, 0}); id != 3 {
		t.Fatalf("colliding vector returned stale id %d", id)
	}
	if id, _ := c.Classify([]float32{3, 0}); id != 3 || calls != 2 {
		t.Fatalf("expected cached id 3 after two inner calls, got id=%d calls=%d", id, calls)
	}
}

func TestCached_StoresCopyOfInput(t *testing.T) {
	calls := 0
	inner := Func(func(f []float32) (int, float32) {
		calls++
		return int(f[0]), 0.5
	})
	c, _ := NewCached(inner, 8)
	in := []float32{5, 1}
	c.Classify(in)
	in[0] = 6
	if id, _ := c.Classify(in); id != 6 || calls != 2 {
		t.Fatalf("mutated input should miss, got id=%d calls=%d", id, calls)
	}
}
